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

package repository

import (
	"context"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/giveaway/internal/domain"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/giveaway/internal/repository/dao"
)

var ErrEntryDuplicate = dao.ErrEntryDuplicate

type EntryRepository interface {
	Create(ctx context.Context, entry domain.Entry) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

type entryRepository struct {
	entryDao dao.GiveawayEntryDAO
}

func NewEntryRepository(entryDao dao.GiveawayEntryDAO) EntryRepository {
	return &entryRepository{entryDao: entryDao}
}

func (r *entryRepository) Create(ctx context.Context, entry domain.Entry) (int64, error) {
	return r.entryDao.Insert(ctx, dao.GiveawayEntry{
		Email: entry.Email,
	})
}

func (r *entryRepository) CountAll(ctx context.Context) (int64, error) {
	return r.entryDao.CountAll(ctx)
}
