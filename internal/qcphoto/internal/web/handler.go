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

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/qcphoto/internal/domain"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/qcphoto/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type FetchReq struct {
	GoodsUrl string `json:"goodsUrl"`
}

// Photo 字段名沿用上游契约，前端直接透传渲染
type Photo struct {
	ImageUrl    string `json:"image_url"`
	ProductName string `json:"product_name"`
	QcDate      string `json:"qc_date"`
}

type PhotoList struct {
	Photos []Photo `json:"photos"`
}

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/qc-images", ginx.B[FetchReq](h.Fetch))
}

func (h *Handler) Fetch(ctx *ginx.Context, req FetchReq) (ginx.Result, error) {
	photos, err := h.svc.FetchPhotos(ctx, req.GoodsUrl)
	switch {
	case errors.Is(err, service.ErrInvalidGoodsURL):
		return invalidGoodsURLResult, nil
	case errors.Is(err, service.ErrUpstreamFailure):
		// 上游异常只给调用方一个笼统的失败，细节留在日志里
		h.logger.Warn("拉取质检照片失败", elog.FieldErr(err))
		return upstreamFailureResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{
			Data: PhotoList{
				Photos: slice.Map(photos, func(idx int, p domain.Photo) Photo {
					return Photo{
						ImageUrl:    p.ImageURL,
						ProductName: p.ProductName,
						QcDate:      p.QCDate,
					}
				}),
			},
		}, nil
	}
}
