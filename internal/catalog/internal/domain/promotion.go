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

// PromotionActive 判断推广窗口是否生效。
// 零值 until 表示没有推广；正好等于 now 算已过期
func PromotionActive(until, now time.Time) bool {
	return !until.IsZero() && until.After(now)
}

// PromotionDaysRemaining 剩余天数，向上取整。
// 只剩 30 分钟也算 1 天，前端据此展示 "Last Day!"
func PromotionDaysRemaining(until, now time.Time) int {
	d := until.Sub(now)
	if d <= 0 {
		return 0
	}
	const day = 24 * time.Hour
	days := int(d / day)
	if d%day > 0 {
		days++
	}
	return days
}

// NextRefresh 返回下一个周日零点（UTC）。
// 窗口是半开的：now 正好落在边界上时返回下一个周日，而不是当前时刻
func NextRefresh(now time.Time) time.Time {
	now = now.UTC()
	days := (7 - int(now.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	next := now.AddDate(0, 0, days)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, time.UTC)
}

// BoostContribution 单条加成的有效贡献：
// 页面匹配且未过期取 amount，否则是 0
func BoostContribution(b Boost, page string, now time.Time) int64 {
	if b.Page == page && b.ValidUntil.After(now) {
		return b.Amount
	}
	return 0
}

// TotalBoost 商品在某个展示页上的加成总量。
// 同页多条有效加成是叠加的，不取最大值
func TotalBoost(boosts []Boost, page string, now time.Time) int64 {
	var total int64
	for _, b := range boosts {
		total += BoostContribution(b, page, now)
	}
	return total
}
