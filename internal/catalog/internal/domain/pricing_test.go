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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayPrice(t *testing.T) {
	testCases := []struct {
		name    string
		cny     float64
		wantRes string
	}{
		{
			name:    "整百换算",
			cny:     100,
			wantRes: "14.00",
		},
		{
			name:    "保留两位小数",
			cny:     19.9,
			wantRes: "2.79",
		},
		{
			name:    "零价",
			cny:     0,
			wantRes: "0.00",
		},
		{
			name:    "NaN回落",
			cny:     math.NaN(),
			wantRes: "0.00",
		},
		{
			name:    "Inf回落",
			cny:     math.Inf(1),
			wantRes: "0.00",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, DisplayPrice(tc.cny))
		})
	}
}
