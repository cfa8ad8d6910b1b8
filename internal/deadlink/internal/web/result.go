package web

import (
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/deadlink/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	missingFieldsResult = ginx.Result{
		Code: errs.MissingFields.Code,
		Msg:  errs.MissingFields.Msg,
	}
	notifyFailureResult = ginx.Result{
		Code: errs.NotifyFailure.Code,
		Msg:  errs.NotifyFailure.Msg,
	}
)
