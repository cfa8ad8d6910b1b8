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

import "database/sql"

type Product struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
	// SourceId 爬虫侧的商品 ID，详情页用它或 name 匹配
	SourceId    string  `gorm:"type:varchar(64);index:idx_source_id;comment:来源侧ID"`
	Name        string  `gorm:"type:varchar(256);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null;default:0;comment:人民币价格"`
	Link        string  `gorm:"type:varchar(1024)"`
	Category    string  `gorm:"type:varchar(64);index:idx_category"`
	CreatorName string  `gorm:"type:varchar(128);index:idx_creator_name"`
	Store       string  `gorm:"type:varchar(128)"`
	// Images JSON 数组，第一个元素是主图
	Images string `gorm:"type:text"`
	// Hidden 软隐藏，目录读全部排除；不做物理删除
	Hidden    bool  `gorm:"not null;default:false"`
	ViewCount int64 `gorm:"not null;default:0"`
	Purchased int64 `gorm:"not null;default:0"`
	// FindsOfTheWeekUntil 毫秒时间戳，NULL 表示未在推广期
	FindsOfTheWeekUntil sql.NullInt64
	Ctime               int64
	Utime               int64
}

func (Product) TableName() string {
	return "products"
}

type ProductBoost struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	ProductId int64  `gorm:"not null;index:idx_product_id"`
	BoostPage string `gorm:"type:varchar(64);not null;comment:生效展示页"`
	Amount    int64  `gorm:"not null;default:0"`
	// ValidUntil 毫秒时间戳
	ValidUntil int64 `gorm:"not null"`
	Ctime      int64
	Utime      int64
}

func (ProductBoost) TableName() string {
	return "product_boosts"
}

// ProductPurchase 购买流水，只插入不更新
type ProductPurchase struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	ProductId   int64  `gorm:"not null;index:idx_product_id"`
	Origin      string `gorm:"type:varchar(64);not null"`
	PurchasedAt int64  `gorm:"not null"`
}

func (ProductPurchase) TableName() string {
	return "product_purchases"
}
