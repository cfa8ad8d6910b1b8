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
	"math"
	"strconv"
)

// CnyToUsdRate 固定汇率。站点展示价不追实时汇率
const CnyToUsdRate = 0.14

// DisplayPrice 把人民币价格换算成美元展示价，保留两位小数。
// 非法输入（NaN/Inf）统一返回 "0.00"，不报错
func DisplayPrice(cny float64) string {
	if math.IsNaN(cny) || math.IsInf(cny, 0) {
		return "0.00"
	}
	return strconv.FormatFloat(cny*CnyToUsdRate, 'f', 2, 64)
}
