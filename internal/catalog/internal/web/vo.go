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
	"time"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/domain"
)

type PurchaseReq struct {
	CreatorName string `json:"creatorName"`
	ProductId   int64  `json:"productId"`
}

type PurchaseResp struct {
	Purchased int64 `json:"purchased"`
}

// Product 对外展示的商品。Price 已换算成美元的展示串
type Product struct {
	Id          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Link        string   `json:"link"`
	Category    string   `json:"category"`
	CreatorName string   `json:"creatorName"`
	Store       string   `json:"store"`
	MainImage   string   `json:"mainImage"`
	Images      []string `json:"images"`
	ViewCount   int64    `json:"viewCount"`
	Purchased   int64    `json:"purchased"`
	// DaysRemaining 只在推广视图里有值
	DaysRemaining int `json:"daysRemaining,omitempty"`
}

type ProductList struct {
	Products []Product `json:"products"`
	// TotalProducts 当前过滤条件下的数量
	TotalProducts int `json:"totalProducts"`
	// TotalCollectionSize 不带过滤的全量
	TotalCollectionSize int64 `json:"totalCollectionSize"`
	CurrentPage         int   `json:"currentPage"`
	TotalPages          int   `json:"totalPages"`
	HasNextPage         bool  `json:"hasNextPage"`
	HasPrevPage         bool  `json:"hasPrevPage"`
}

type WeeklyFindsList struct {
	ProductList
	// TotalFindsOfTheWeek 推广期内的总量，不受搜索收窄影响
	TotalFindsOfTheWeek int64  `json:"totalFindsOfTheWeek"`
	NextRefreshDate     string `json:"nextRefreshDate"`
}

func newProduct(p domain.Product) Product {
	return Product{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       domain.DisplayPrice(p.Price),
		Link:        p.Link,
		Category:    p.Category,
		CreatorName: p.CreatorName,
		Store:       p.Store,
		MainImage:   p.MainImage(),
		Images:      p.Images,
		ViewCount:   p.ViewCount,
		Purchased:   p.Purchased,
	}
}

func newPromotedProduct(p domain.Product, now time.Time) Product {
	res := newProduct(p)
	res.DaysRemaining = domain.PromotionDaysRemaining(p.FindsOfTheWeekUntil, now)
	return res
}
