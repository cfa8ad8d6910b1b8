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
	"errors"
	"regexp"
	"strings"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/giveaway/internal/domain"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/giveaway/internal/repository"
)

var (
	ErrInvalidEmail   = errors.New("邮箱格式不对")
	ErrEntryDuplicate = repository.ErrEntryDuplicate
)

// 粗粒度校验，真正的裁决在唯一索引
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=mocks/service.mock.go -typed Service
type Service interface {
	// Signup 报名抽奖，重复邮箱返回 ErrEntryDuplicate
	Signup(ctx context.Context, email string) (int64, error)
}

type service struct {
	repo repository.EntryRepository
}

func NewService(repo repository.EntryRepository) Service {
	return &service{repo: repo}
}

func (s *service) Signup(ctx context.Context, email string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return 0, ErrInvalidEmail
	}
	return s.repo.Create(ctx, domain.Entry{Email: email})
}
