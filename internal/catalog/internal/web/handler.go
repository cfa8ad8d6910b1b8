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
	"strconv"
	"strings"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/domain"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

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
	server.GET("/products", ginx.W(h.List))
	server.GET("/finds-of-the-week", ginx.W(h.WeeklyFinds))
	server.GET("/products/:creatorName/:productName", ginx.W(h.Detail))
	server.POST("/products/purchase", ginx.B[PurchaseReq](h.Purchase))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	page, err := h.svc.List(ctx, h.listParams(ctx))
	if errors.Is(err, service.ErrCatalogEmpty) {
		return noProductsResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProductList{
			Products: slice.Map(page.Products, func(idx int, p domain.Product) Product {
				return newProduct(p)
			}),
			TotalProducts:       page.Window.Total,
			TotalCollectionSize: page.TotalAll,
			CurrentPage:         page.Window.Page,
			TotalPages:          page.Window.TotalPages,
			HasNextPage:         page.Window.HasNext,
			HasPrevPage:         page.Window.HasPrev,
		},
	}, nil
}

func (h *Handler) WeeklyFinds(ctx *ginx.Context) (ginx.Result, error) {
	page, err := h.svc.WeeklyFinds(ctx, h.listParams(ctx))
	if errors.Is(err, service.ErrNoWeeklyFinds) {
		return noWeeklyFindsResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: WeeklyFindsList{
			ProductList: ProductList{
				Products: slice.Map(page.Products, func(idx int, p domain.Product) Product {
					return newPromotedProduct(p, page.EvaluatedAt)
				}),
				TotalProducts:       page.Window.Total,
				TotalCollectionSize: page.TotalPromoted,
				CurrentPage:         page.Window.Page,
				TotalPages:          page.Window.TotalPages,
				HasNextPage:         page.Window.HasNext,
				HasPrevPage:         page.Window.HasPrev,
			},
			TotalFindsOfTheWeek: page.TotalPromoted,
			NextRefreshDate:     page.NextRefresh.Format("2006-01-02T15:04:05Z07:00"),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	creatorName := ctx.Param("creatorName").StringOrDefault("")
	productName := ctx.Param("productName").StringOrDefault("")
	if creatorName == "" || productName == "" {
		return invalidInputResult, nil
	}
	product, err := h.svc.Detail(ctx, creatorName, productName)
	if errors.Is(err, service.ErrProductNotFound) {
		return productNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProduct(product),
	}, nil
}

func (h *Handler) Purchase(ctx *ginx.Context, req PurchaseReq) (ginx.Result, error) {
	if strings.TrimSpace(req.CreatorName) == "" || req.ProductId <= 0 {
		return invalidInputResult, nil
	}
	purchased, err := h.svc.Purchase(ctx, req.CreatorName, req.ProductId)
	if errors.Is(err, service.ErrProductNotFound) {
		return productNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PurchaseResp{Purchased: purchased},
	}, nil
}

// listParams 从查询串取列表参数，page/limit 解析失败按没传处理
func (h *Handler) listParams(ctx *ginx.Context) service.ListParams {
	page, _ := strconv.Atoi(ctx.Query("page").StringOrDefault(""))
	limit, _ := strconv.Atoi(ctx.Query("limit").StringOrDefault(""))
	return service.ListParams{
		Search:      ctx.Query("search").StringOrDefault(""),
		Category:    ctx.Query("category").StringOrDefault(""),
		CreatorName: ctx.Query("creatorName").StringOrDefault(""),
		Page:        page,
		Limit:       limit,
	}
}
