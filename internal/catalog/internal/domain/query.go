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
	"strings"
	"time"
)

// 可过滤字段名，DAO 按这些名字映射到存储列
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldCreatorName = "creatorName"
	FieldStore       = "store"
	FieldLink        = "link"
	FieldCategory    = "category"
	FieldPromotedAt  = "findsOfTheWeekUntil"
)

// searchFields 是自由搜索覆盖的字段
var searchFields = []string{
	FieldName,
	FieldDescription,
	FieldCreatorName,
	FieldStore,
	FieldLink,
}

// ListQuery 列表请求的过滤参数
type ListQuery struct {
	Search      string
	Category    string
	CreatorName string
	// PromotedOnly 只要推广期内的商品（finds of the week 视图）
	PromotedOnly bool
}

// BuildFilter 把过滤参数编译成 Predicate。
// 空白搜索词等同于没传，不会生成"匹配空串"的条件。
// PromotedOnly 的推广期条件永远以 AND 合取，不会被其它过滤替换掉
func (q ListQuery) BuildFilter(now time.Time) Predicate {
	var subs []Predicate

	if q.PromotedOnly {
		subs = append(subs, After(FieldPromotedAt, now))
	}

	if search := strings.TrimSpace(q.Search); search != "" {
		ors := make([]Predicate, 0, len(searchFields))
		for _, f := range searchFields {
			ors = append(ors, ContainsCI(f, search))
		}
		subs = append(subs, Or(ors...))
	}

	if q.Category != "" && q.Category != CategoryAll {
		subs = append(subs, Eq(FieldCategory, q.Category))
	}

	if q.CreatorName != "" {
		subs = append(subs, ContainsCI(FieldCreatorName, q.CreatorName))
	}

	switch len(subs) {
	case 0:
		return Predicate{}
	case 1:
		return subs[0]
	default:
		return And(subs...)
	}
}

// Filtered 表示除了推广期条件之外还带了别的过滤
func (q ListQuery) Filtered() bool {
	return strings.TrimSpace(q.Search) != "" ||
		(q.Category != "" && q.Category != CategoryAll) ||
		q.CreatorName != ""
}
