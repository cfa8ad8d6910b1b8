package web

import (
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/giveaway/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidEmailResult = ginx.Result{
		Code: errs.InvalidEmail.Code,
		Msg:  errs.InvalidEmail.Msg,
	}
	alreadyRegisteredResult = ginx.Result{
		Code: errs.AlreadyRegistered.Code,
		Msg:  errs.AlreadyRegistered.Msg,
	}
)
