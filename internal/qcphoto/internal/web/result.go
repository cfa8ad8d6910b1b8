package web

import (
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/qcphoto/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidGoodsURLResult = ginx.Result{
		Code: errs.InvalidGoodsURL.Code,
		Msg:  errs.InvalidGoodsURL.Msg,
	}
	upstreamFailureResult = ginx.Result{
		Code: errs.UpstreamFailure.Code,
		Msg:  errs.UpstreamFailure.Msg,
	}
)
