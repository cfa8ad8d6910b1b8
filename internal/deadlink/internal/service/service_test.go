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

package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/deadlink/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Report(t *testing.T) {
	t.Parallel()
	var received webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	svc := NewService(http.DefaultClient, server.URL)
	err := svc.Report(context.Background(), domain.Report{
		SpreadsheetLink: "https://kakobuyspreadsheets.net/products/alice/jordan-4",
		SourceLink:      "https://weidian.com/item.html?itemID=123",
	})
	require.NoError(t, err)
	require.Len(t, received.Embeds, 1)
	embed := received.Embeds[0]
	assert.Equal(t, "🚨 Dead Link Report", embed.Title)
	assert.Equal(t, 16711680, embed.Color)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "https://weidian.com/item.html?itemID=123", embed.Fields[1].Value)
	// 没填邮箱时用占位文案，不发空串
	assert.Equal(t, "No email provided", embed.Fields[2].Value)
}

func TestService_Report_MissingFields(t *testing.T) {
	t.Parallel()
	svc := NewService(http.DefaultClient, "http://127.0.0.1:1")
	testCases := []struct {
		name   string
		report domain.Report
	}{
		{
			name:   "没有表格链接",
			report: domain.Report{SourceLink: "https://weidian.com/item.html?itemID=1"},
		},
		{
			name:   "没有源链接",
			report: domain.Report{SpreadsheetLink: "https://kakobuyspreadsheets.net/p/1"},
		},
		{
			name:   "只有空白",
			report: domain.Report{SpreadsheetLink: "  ", SourceLink: "\t"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Report(context.Background(), tc.report)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestService_Report_DeliveryFailure(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	svc := NewService(http.DefaultClient, server.URL)
	err := svc.Report(context.Background(), domain.Report{
		SpreadsheetLink: "https://kakobuyspreadsheets.net/p/1",
		SourceLink:      "https://weidian.com/item.html?itemID=1",
	})
	assert.ErrorIs(t, err, ErrNotifyFailure)
}
