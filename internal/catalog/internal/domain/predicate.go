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

// Predicate 是结构化的过滤条件，而不是拼好的查询字符串。
// DAO 层负责把它翻译成具体存储的查询，这里只描述语义，
// 所以查询构造可以独立于存储做测试
type Predicate struct {
	Op Op
	// 叶子节点用 Field/相应的值，And/Or 用 Subs
	Field string
	Str   string
	Time  time.Time
	Subs  []Predicate
}

type Op uint8

const (
	// OpAnd 所有子条件同时成立
	OpAnd Op = iota + 1
	// OpOr 任一子条件成立
	OpOr
	// OpEq 字段精确匹配
	OpEq
	// OpContainsCI 字段包含子串，忽略大小写
	OpContainsCI
	// OpAfter 时间字段非空且严格晚于给定时刻
	OpAfter
)

func And(subs ...Predicate) Predicate {
	return Predicate{Op: OpAnd, Subs: subs}
}

func Or(subs ...Predicate) Predicate {
	return Predicate{Op: OpOr, Subs: subs}
}

func Eq(field, val string) Predicate {
	return Predicate{Op: OpEq, Field: field, Str: val}
}

func ContainsCI(field, substr string) Predicate {
	return Predicate{Op: OpContainsCI, Field: field, Str: substr}
}

func After(field string, t time.Time) Predicate {
	return Predicate{Op: OpAfter, Field: field, Time: t}
}

// IsZero 表示"没有任何过滤条件"
func (p Predicate) IsZero() bool {
	return p.Op == 0
}
