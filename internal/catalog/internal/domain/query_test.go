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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQuery_BuildFilter(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		name    string
		query   ListQuery
		wantRes Predicate
	}{
		{
			name:    "没有条件",
			query:   ListQuery{},
			wantRes: Predicate{},
		},
		{
			name:    "空白搜索等同没传",
			query:   ListQuery{Search: "   "},
			wantRes: Predicate{},
		},
		{
			name:    "All分类不过滤",
			query:   ListQuery{Category: CategoryAll},
			wantRes: Predicate{},
		},
		{
			name:  "只有搜索词",
			query: ListQuery{Search: "shoe"},
			wantRes: Or(
				ContainsCI(FieldName, "shoe"),
				ContainsCI(FieldDescription, "shoe"),
				ContainsCI(FieldCreatorName, "shoe"),
				ContainsCI(FieldStore, "shoe"),
				ContainsCI(FieldLink, "shoe"),
			),
		},
		{
			name:    "分类过滤",
			query:   ListQuery{Category: "Hoodies"},
			wantRes: Eq(FieldCategory, "Hoodies"),
		},
		{
			name:    "创作者子串",
			query:   ListQuery{CreatorName: "manyou"},
			wantRes: ContainsCI(FieldCreatorName, "manyou"),
		},
		{
			name:    "只推广视图",
			query:   ListQuery{PromotedOnly: true},
			wantRes: After(FieldPromotedAt, now),
		},
		{
			// 推广条件必须和搜索条件合取，不能被 OR 吞掉
			name:  "推广视图加搜索",
			query: ListQuery{PromotedOnly: true, Search: "hoodie"},
			wantRes: And(
				After(FieldPromotedAt, now),
				Or(
					ContainsCI(FieldName, "hoodie"),
					ContainsCI(FieldDescription, "hoodie"),
					ContainsCI(FieldCreatorName, "hoodie"),
					ContainsCI(FieldStore, "hoodie"),
					ContainsCI(FieldLink, "hoodie"),
				),
			),
		},
		{
			name: "全部条件",
			query: ListQuery{
				PromotedOnly: true,
				Search:       "nike",
				Category:     "Shoes",
				CreatorName:  "manyou",
			},
			wantRes: And(
				After(FieldPromotedAt, now),
				Or(
					ContainsCI(FieldName, "nike"),
					ContainsCI(FieldDescription, "nike"),
					ContainsCI(FieldCreatorName, "nike"),
					ContainsCI(FieldStore, "nike"),
					ContainsCI(FieldLink, "nike"),
				),
				Eq(FieldCategory, "Shoes"),
				ContainsCI(FieldCreatorName, "manyou"),
			),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.query.BuildFilter(now))
		})
	}
}

// 搜索是子串匹配：词落在单词中间也要命中
func TestListQuery_BuildFilter_Substring(t *testing.T) {
	now := time.Now()
	p := ListQuery{Search: "shoe"}.BuildFilter(now)
	require.Equal(t, OpOr, p.Op)
	matched := false
	for _, sub := range p.Subs {
		if sub.Field == FieldDescription {
			matched = true
			assert.Equal(t, OpContainsCI, sub.Op)
			assert.Equal(t, "shoe", sub.Str)
		}
	}
	assert.True(t, matched)
}

func TestListQuery_Filtered(t *testing.T) {
	assert.False(t, ListQuery{}.Filtered())
	assert.False(t, ListQuery{Category: CategoryAll}.Filtered())
	assert.False(t, ListQuery{PromotedOnly: true}.Filtered())
	assert.True(t, ListQuery{Search: "x"}.Filtered())
	assert.True(t, ListQuery{Category: "Shoes"}.Filtered())
	assert.True(t, ListQuery{CreatorName: "a"}.Filtered())
}
