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

import (
	"sort"
	"strings"
	"time"
)

// 鞋类页的运营规则：manyouyisi 的商品固定排在最前面。
// 这是针对单个分类的特例，不做成通用机制
const (
	priorityCategory    = "Shoes"
	priorityCreatorPart = "manyouyisi"
)

// RankMode 排序模式
type RankMode uint8

const (
	// RankGeneral 普通目录：页面加成、购买数、浏览数、ID，全部倒序
	RankGeneral RankMode = iota + 1
	// RankPromoted 推广视图：先到期的排前面，然后浏览数、购买数、ID 倒序
	RankPromoted
)

// Rank 对商品做确定性多键排序。page 是加成生效的展示页标识。
// 最后一个排序键永远是 ID 倒序，保证同分商品顺序稳定
func Rank(items []Product, mode RankMode, page string, now time.Time) {
	switch mode {
	case RankPromoted:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i], items[j]
			if !a.FindsOfTheWeekUntil.Equal(b.FindsOfTheWeekUntil) {
				return a.FindsOfTheWeekUntil.Before(b.FindsOfTheWeekUntil)
			}
			if a.ViewCount != b.ViewCount {
				return a.ViewCount > b.ViewCount
			}
			if a.Purchased != b.Purchased {
				return a.Purchased > b.Purchased
			}
			return a.ID > b.ID
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i], items[j]
			ba, bb := TotalBoost(a.Boosts, page, now), TotalBoost(b.Boosts, page, now)
			if ba != bb {
				return ba > bb
			}
			if a.Purchased != b.Purchased {
				return a.Purchased > b.Purchased
			}
			if a.ViewCount != b.ViewCount {
				return a.ViewCount > b.ViewCount
			}
			return a.ID > b.ID
		})
	}
}

// ApplyCreatorPriority 排序后的分区步骤：只在鞋类页生效，
// 把指定创作者的商品整体提到最前面，两个分区各用各的排序规则再拼接。
// 对其它分类原样返回
func ApplyCreatorPriority(items []Product, category, page string, now time.Time) []Product {
	if category != priorityCategory {
		return items
	}
	prioritized := make([]Product, 0, len(items))
	rest := make([]Product, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.CreatorName), priorityCreatorPart) {
			prioritized = append(prioritized, p)
		} else {
			rest = append(rest, p)
		}
	}
	sort.SliceStable(prioritized, func(i, j int) bool {
		a, b := prioritized[i], prioritized[j]
		if a.Purchased != b.Purchased {
			return a.Purchased > b.Purchased
		}
		return a.ViewCount > b.ViewCount
	})
	sort.SliceStable(rest, func(i, j int) bool {
		a, b := rest[i], rest[j]
		ba, bb := TotalBoost(a.Boosts, page, now), TotalBoost(b.Boosts, page, now)
		if ba != bb {
			return ba > bb
		}
		return a.Purchased > b.Purchased
	})
	return append(prioritized, rest...)
}

// PageWindow 分页窗口的派生信息
type PageWindow struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// NewPageWindow 归一化分页参数并计算窗口。
// page 从 1 开始，非法值回落到 1；limit 非法时回落到 defaultLimit
func NewPageWindow(page, limit, defaultLimit, total int) PageWindow {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	totalPages := (total + limit - 1) / limit
	return PageWindow{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page*limit < total,
		HasPrev:    page > 1,
	}
}

// Slice 取当前页的切片。翻过尾页返回空列表，这不是错误
func (w PageWindow) Slice(items []Product) []Product {
	start := (w.Page - 1) * w.Limit
	if start >= len(items) {
		return []Product{}
	}
	end := start + w.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
