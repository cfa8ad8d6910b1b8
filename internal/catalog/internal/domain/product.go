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

package domain

import "time"

// CategoryAll 是前端的"不限分类"哨兵值，不会出现在存储里
const CategoryAll = "All"

// Categories 是固定的分类集合，爬虫写入时已经归一化，
// 不在集合里的都落到 Other
var Categories = []string{
	"Verified Finds",
	"Shoes",
	"Hoodies",
	"Sweaters",
	"T-Shirts",
	"Tracksuits",
	"Accessories",
}

const DefaultMainImage = "/images/default-product.jpg"

type Product struct {
	ID int64
	// SourceID 是爬虫侧的 ID，和 creatorName 一起用于详情页路由
	SourceID    string
	Name        string
	Description string
	// Price 是人民币原价，展示价由 DisplayPrice 换算
	Price       float64
	Link        string
	Category    string
	CreatorName string
	Store       string
	// Images 第一张是主图
	Images []string
	Hidden bool

	ViewCount int64
	Purchased int64

	// FindsOfTheWeekUntil 零值表示没有在推广期内。
	// 过期是隐式的：没有后台任务清理，每次读都要和 now 比较
	FindsOfTheWeekUntil time.Time

	Boosts []Boost

	Ctime time.Time
	Utime time.Time
}

// MainImage 返回主图，图片列表为空时退回默认占位图
func (p Product) MainImage() string {
	if len(p.Images) == 0 || p.Images[0] == "" {
		return DefaultMainImage
	}
	return p.Images[0]
}

// Boost 是挂在商品上的限时排序加成，只对特定展示页生效
type Boost struct {
	// Page 标识加成生效的展示页
	Page       string
	Amount     int64
	ValidUntil time.Time
}

// PurchaseRecord 购买流水，只追加不修改
type PurchaseRecord struct {
	PurchasedAt time.Time
	Origin      string
}
