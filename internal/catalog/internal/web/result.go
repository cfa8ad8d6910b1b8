package web

import (
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	noProductsResult = ginx.Result{
		Code: errs.NoProducts.Code,
		Msg:  errs.NoProducts.Msg,
	}
	noWeeklyFindsResult = ginx.Result{
		Code: errs.NoWeeklyFinds.Code,
		Msg:  errs.NoWeeklyFinds.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)
