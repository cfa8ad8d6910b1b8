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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrEntryDuplicate 同一个邮箱重复报名，由唯一索引裁决
var ErrEntryDuplicate = errors.New("邮箱已经报过名了")

type GiveawayEntry struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Email string `gorm:"type:varchar(254);uniqueIndex:uk_email"`
	Ctime int64
	Utime int64
}

func (GiveawayEntry) TableName() string {
	return "giveaway_entries"
}

type GiveawayEntryDAO interface {
	// Insert 靠唯一索引拦截重复报名，并发下也只会有一条成功
	Insert(ctx context.Context, entry GiveawayEntry) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

type GORMGiveawayEntryDAO struct {
	db *egorm.Component
}

func NewGiveawayEntryDAO(db *egorm.Component) GiveawayEntryDAO {
	return &GORMGiveawayEntryDAO{db: db}
}

func (g *GORMGiveawayEntryDAO) Insert(ctx context.Context, entry GiveawayEntry) (int64, error) {
	now := time.Now().UnixMilli()
	entry.Ctime = now
	entry.Utime = now
	err := g.db.WithContext(ctx).Create(&entry).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrEntryDuplicate
		}
	}
	return entry.Id, err
}

func (g *GORMGiveawayEntryDAO) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&GiveawayEntry{}).Count(&count).Error
	return count, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&GiveawayEntry{})
}
