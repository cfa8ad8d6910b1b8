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
)

func TestPromotionActive(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		name    string
		until   time.Time
		wantRes bool
	}{
		{
			name:    "没有推广",
			until:   time.Time{},
			wantRes: false,
		},
		{
			name:    "还在窗口内",
			until:   now.Add(time.Hour),
			wantRes: true,
		},
		{
			name:    "正好到期",
			until:   now,
			wantRes: false,
		},
		{
			name:    "已过期",
			until:   now.Add(-time.Minute),
			wantRes: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, PromotionActive(tc.until, now))
		})
	}
}

// 窗口一旦失效就不会再激活：对任意更晚的 now 都保持 false
func TestPromotionActive_MonotonicExpiry(t *testing.T) {
	until := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	now := until
	for i := 0; i < 10; i++ {
		assert.False(t, PromotionActive(until, now))
		now = now.Add(time.Duration(i+1) * time.Hour)
	}
}

func TestPromotionDaysRemaining(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		name    string
		until   time.Time
		wantRes int
	}{
		{
			name:    "还剩30分钟也算1天",
			until:   now.Add(30 * time.Minute),
			wantRes: 1,
		},
		{
			name:    "90分钟算1天",
			until:   now.Add(90 * time.Minute),
			wantRes: 1,
		},
		{
			name:    "25小时算2天",
			until:   now.Add(25 * time.Hour),
			wantRes: 2,
		},
		{
			name:    "整48小时算2天",
			until:   now.Add(48 * time.Hour),
			wantRes: 2,
		},
		{
			name:    "已过期是0",
			until:   now.Add(-time.Hour),
			wantRes: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, PromotionDaysRemaining(tc.until, now))
		})
	}
}

func TestNextRefresh(t *testing.T) {
	testCases := []struct {
		name    string
		now     time.Time
		wantRes time.Time
	}{
		{
			name:    "周三指向本周日",
			now:     time.Date(2024, 6, 5, 15, 30, 0, 0, time.UTC), // Wednesday
			wantRes: time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "周六指向次日",
			now:     time.Date(2024, 6, 8, 23, 0, 0, 0, time.UTC), // Saturday
			wantRes: time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			// 半开窗口：边界时刻属于上一个周期
			name:    "正好在周日零点指向下个周日",
			now:     time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), // Sunday 00:00
			wantRes: time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "周日下午指向下个周日",
			now:     time.Date(2024, 6, 9, 13, 0, 0, 0, time.UTC),
			wantRes: time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, NextRefresh(tc.now))
		})
	}
}

func TestTotalBoost(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	const page = "6799584fbc65b3b31ece3bc6"
	testCases := []struct {
		name    string
		boosts  []Boost
		wantRes int64
	}{
		{
			name:    "没有加成",
			boosts:  nil,
			wantRes: 0,
		},
		{
			name: "全部过期时是0",
			boosts: []Boost{
				{Page: page, Amount: 10, ValidUntil: now.Add(-time.Hour)},
				{Page: page, Amount: 5, ValidUntil: now},
			},
			wantRes: 0,
		},
		{
			name: "别的页面不计入",
			boosts: []Boost{
				{Page: "other", Amount: 10, ValidUntil: now.Add(time.Hour)},
			},
			wantRes: 0,
		},
		{
			// 同页多条有效加成叠加求和
			name: "同页叠加",
			boosts: []Boost{
				{Page: page, Amount: 10, ValidUntil: now.Add(time.Hour)},
				{Page: page, Amount: 7, ValidUntil: now.Add(48 * time.Hour)},
				{Page: "other", Amount: 100, ValidUntil: now.Add(time.Hour)},
				{Page: page, Amount: 3, ValidUntil: now.Add(-time.Hour)},
			},
			wantRes: 17,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, TotalBoost(tc.boosts, page, now))
		})
	}
}
