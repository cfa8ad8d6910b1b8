// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/deadlink/internal/domain"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/deadlink/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type ReportReq struct {
	ProductLinkSpreadsheet string `json:"productLinkSpreadsheet"`
	ProductLinkSource      string `json:"productLinkSource"`
	Email                  string `json:"email"`
}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/report-dead-link", ginx.B[ReportReq](h.Report))
}

func (h *Handler) Report(ctx *ginx.Context, req ReportReq) (ginx.Result, error) {
	err := h.svc.Report(ctx, domain.Report{
		SpreadsheetLink: req.ProductLinkSpreadsheet,
		SourceLink:      req.ProductLinkSource,
		Email:           req.Email,
	})
	switch {
	case errors.Is(err, service.ErrMissingFields):
		return missingFieldsResult, nil
	case errors.Is(err, service.ErrNotifyFailure):
		return notifyFailureResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{}, nil
	}
}
