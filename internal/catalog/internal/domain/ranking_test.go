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
	"testing"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/stretchr/testify/assert"
)

const testPage = "6799584fbc65b3b31ece3bc6"

func ids(items []Product) []int64 {
	return slice.Map(items, func(idx int, p Product) int64 {
		return p.ID
	})
}

func TestRank_General(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	boost := func(amount int64) []Boost {
		return []Boost{{Page: testPage, Amount: amount, ValidUntil: now.Add(time.Hour)}}
	}
	testCases := []struct {
		name    string
		items   []Product
		wantIds []int64
	}{
		{
			name: "加成优先",
			items: []Product{
				{ID: 1, Purchased: 100, ViewCount: 100},
				{ID: 2, Boosts: boost(1), Purchased: 0, ViewCount: 0},
			},
			wantIds: []int64{2, 1},
		},
		{
			// 过期加成不参与排序
			name: "过期加成无效",
			items: []Product{
				{ID: 1, Purchased: 5},
				{ID: 2, Boosts: []Boost{{Page: testPage, Amount: 99, ValidUntil: now.Add(-time.Hour)}}, Purchased: 1},
			},
			wantIds: []int64{1, 2},
		},
		{
			name: "同加成比购买数",
			items: []Product{
				{ID: 1, Purchased: 3, ViewCount: 50},
				{ID: 2, Purchased: 7, ViewCount: 1},
			},
			wantIds: []int64{2, 1},
		},
		{
			name: "同购买数比浏览数",
			items: []Product{
				{ID: 1, Purchased: 3, ViewCount: 5},
				{ID: 2, Purchased: 3, ViewCount: 9},
			},
			wantIds: []int64{2, 1},
		},
		{
			name: "全同时ID倒序保证稳定",
			items: []Product{
				{ID: 1},
				{ID: 3},
				{ID: 2},
			},
			wantIds: []int64{3, 2, 1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			Rank(tc.items, RankGeneral, testPage, now)
			assert.Equal(t, tc.wantIds, ids(tc.items))
		})
	}
}

func TestRank_Promoted(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		name    string
		items   []Product
		wantIds []int64
	}{
		{
			// 快到期的排前面
			name: "先到期优先",
			items: []Product{
				{ID: 1, FindsOfTheWeekUntil: now.Add(48 * time.Hour), ViewCount: 5, Purchased: 2},
				{ID: 2, FindsOfTheWeekUntil: now.Add(24 * time.Hour), ViewCount: 5, Purchased: 2},
			},
			wantIds: []int64{2, 1},
		},
		{
			name: "同到期比浏览数",
			items: []Product{
				{ID: 1, FindsOfTheWeekUntil: now.Add(24 * time.Hour), ViewCount: 3},
				{ID: 2, FindsOfTheWeekUntil: now.Add(24 * time.Hour), ViewCount: 8},
			},
			wantIds: []int64{2, 1},
		},
		{
			name: "同浏览数比购买数",
			items: []Product{
				{ID: 1, FindsOfTheWeekUntil: now.Add(24 * time.Hour), ViewCount: 3, Purchased: 1},
				{ID: 2, FindsOfTheWeekUntil: now.Add(24 * time.Hour), ViewCount: 3, Purchased: 4},
			},
			wantIds: []int64{2, 1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			Rank(tc.items, RankPromoted, testPage, now)
			assert.Equal(t, tc.wantIds, ids(tc.items))
		})
	}
}

func TestApplyCreatorPriority(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []Product{
		{ID: 1, CreatorName: "someone", Purchased: 99},
		{ID: 2, CreatorName: "Manyouyisi-Store", Purchased: 1, ViewCount: 10},
		{ID: 3, CreatorName: "other", Boosts: []Boost{{Page: testPage, Amount: 5, ValidUntil: now.Add(time.Hour)}}},
		{ID: 4, CreatorName: "manyouyisi", Purchased: 8},
	}

	t.Run("非鞋类不动", func(t *testing.T) {
		got := ApplyCreatorPriority(items, "Hoodies", testPage, now)
		assert.Equal(t, []int64{1, 2, 3, 4}, ids(got))
	})

	t.Run("鞋类分区置顶", func(t *testing.T) {
		got := ApplyCreatorPriority(items, "Shoes", testPage, now)
		// 优先分区按购买数/浏览数，其余按加成/购买数
		assert.Equal(t, []int64{4, 2, 3, 1}, ids(got))
	})
}

func TestNewPageWindow(t *testing.T) {
	testCases := []struct {
		name    string
		page    int
		limit   int
		total   int
		wantRes PageWindow
	}{
		{
			name:  "常规第一页",
			page:  1,
			limit: 8,
			total: 20,
			wantRes: PageWindow{
				Page: 1, Limit: 8, Total: 20,
				TotalPages: 3, HasNext: true, HasPrev: false,
			},
		},
		{
			name:  "尾页",
			page:  3,
			limit: 8,
			total: 20,
			wantRes: PageWindow{
				Page: 3, Limit: 8, Total: 20,
				TotalPages: 3, HasNext: false, HasPrev: true,
			},
		},
		{
			name:  "非法页码回落到1",
			page:  0,
			limit: 8,
			total: 20,
			wantRes: PageWindow{
				Page: 1, Limit: 8, Total: 20,
				TotalPages: 3, HasNext: true, HasPrev: false,
			},
		},
		{
			name:  "非法limit用默认值",
			page:  1,
			limit: -1,
			total: 20,
			wantRes: PageWindow{
				Page: 1, Limit: 100, Total: 20,
				TotalPages: 1, HasNext: false, HasPrev: false,
			},
		},
		{
			// 翻过尾页不是错误，窗口照常计算
			name:  "翻过尾页",
			page:  9,
			limit: 8,
			total: 20,
			wantRes: PageWindow{
				Page: 9, Limit: 8, Total: 20,
				TotalPages: 3, HasNext: false, HasPrev: true,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, NewPageWindow(tc.page, tc.limit, 100, tc.total))
		})
	}
}

func TestPageWindow_Slice(t *testing.T) {
	items := []Product{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}

	t.Run("第一页", func(t *testing.T) {
		w := NewPageWindow(1, 2, 2, len(items))
		assert.Equal(t, []int64{1, 2}, ids(w.Slice(items)))
	})

	t.Run("第二页", func(t *testing.T) {
		w := NewPageWindow(2, 2, 2, len(items))
		assert.Equal(t, []int64{3, 4}, ids(w.Slice(items)))
	})

	t.Run("不足一页的尾页", func(t *testing.T) {
		w := NewPageWindow(3, 2, 2, len(items))
		assert.Equal(t, []int64{5}, ids(w.Slice(items)))
	})

	t.Run("翻过尾页返回空列表", func(t *testing.T) {
		w := NewPageWindow(9, 2, 2, len(items))
		assert.Equal(t, []Product{}, w.Slice(items))
	})

	// 同样的窗口取两次，结果一致
	t.Run("分页幂等", func(t *testing.T) {
		w := NewPageWindow(1, 2, 2, len(items))
		assert.Equal(t, ids(w.Slice(items)), ids(w.Slice(items)))
	})
}
