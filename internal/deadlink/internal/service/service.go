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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/deadlink/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrMissingFields = errors.New("缺少必填的链接字段")
	// ErrNotifyFailure 通知没送出去。只试一次，调用方只拿到一个笼统的失败
	ErrNotifyFailure = errors.New("发送失效链接通知失败")
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=mocks/service.mock.go -typed Service
type Service interface {
	Report(ctx context.Context, report domain.Report) error
}

type service struct {
	client     *http.Client
	webhookURL string
	logger     *elog.Component
}

func NewService(client *http.Client, webhookURL string) Service {
	return &service{
		client:     client,
		webhookURL: webhookURL,
		logger:     elog.DefaultLogger,
	}
}

type webhookField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type webhookEmbed struct {
	Title     string         `json:"title"`
	Color     int            `json:"color"`
	Fields    []webhookField `json:"fields"`
	Timestamp string         `json:"timestamp"`
}

type webhookPayload struct {
	Embeds []webhookEmbed `json:"embeds"`
}

func (s *service) Report(ctx context.Context, report domain.Report) error {
	if strings.TrimSpace(report.SpreadsheetLink) == "" ||
		strings.TrimSpace(report.SourceLink) == "" {
		return ErrMissingFields
	}
	email := report.Email
	if email == "" {
		email = "No email provided"
	}
	payload := webhookPayload{
		Embeds: []webhookEmbed{
			{
				Title: "🚨 Dead Link Report",
				Color: 16711680,
				Fields: []webhookField{
					{Name: "Spreadsheet Link", Value: report.SpreadsheetLink},
					{Name: "Taobao/Weidian Link", Value: report.SourceLink},
					{Name: "Notify Email", Value: email},
				},
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			},
		},
	}
	if err := s.deliver(ctx, payload); err != nil {
		s.logger.Error("投递失效链接通知失败", elog.FieldErr(err))
		return ErrNotifyFailure
	}
	return nil
}

func (s *service) deliver(ctx context.Context, payload webhookPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.webhookURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	// 正常成功是 204
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook 返回 %s", resp.Status)
	}
	return nil
}
