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
	"fmt"
	"strings"
	"time"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./product.go -package=daomocks -destination=mocks/product.mock.go ProductDAO
type ProductDAO interface {
	// ListByFilter 返回过滤后的全部商品，排序交给上层
	ListByFilter(ctx context.Context, filter domain.Predicate) ([]Product, error)
	CountByFilter(ctx context.Context, filter domain.Predicate) (int64, error)
	// CountAll 不带过滤的总量（隐藏的不算）
	CountAll(ctx context.Context) (int64, error)
	BoostsByProductIds(ctx context.Context, ids []int64) ([]ProductBoost, error)
	// FindByCreatorAndName 详情页匹配：creator 精确 + name 或来源 ID
	FindByCreatorAndName(ctx context.Context, creatorName, productName string) (Product, error)
	// IncrViewCnt 原子自增浏览数，不走读改写
	IncrViewCnt(ctx context.Context, id int64) error
	// IncrPurchased 原子自增购买数并追加一条流水，返回自增后的购买数
	IncrPurchased(ctx context.Context, creatorName string, id int64, origin string) (int64, error)
}

type GORMProductDAO struct {
	db *egorm.Component
}

func NewProductDAO(db *egorm.Component) ProductDAO {
	return &GORMProductDAO{db: db}
}

// fieldColumns 把领域过滤字段映射到列名，不在表里的字段直接报错
var fieldColumns = map[string]string{
	domain.FieldName:        "name",
	domain.FieldDescription: "description",
	domain.FieldCreatorName: "creator_name",
	domain.FieldStore:       "store",
	domain.FieldLink:        "link",
	domain.FieldCategory:    "category",
	domain.FieldPromotedAt:  "finds_of_the_week_until",
}

// buildWhere 把 Predicate 翻译成 SQL 条件。
// 大小写不敏感的子串匹配统一用 LOWER + LIKE，不依赖列的 collation
func buildWhere(p domain.Predicate) (string, []any, error) {
	switch p.Op {
	case domain.OpAnd, domain.OpOr:
		sep := " AND "
		if p.Op == domain.OpOr {
			sep = " OR "
		}
		conds := make([]string, 0, len(p.Subs))
		var args []any
		for _, sub := range p.Subs {
			cond, subArgs, err := buildWhere(sub)
			if err != nil {
				return "", nil, err
			}
			conds = append(conds, cond)
			args = append(args, subArgs...)
		}
		return "(" + strings.Join(conds, sep) + ")", args, nil
	case domain.OpEq:
		col, err := columnOf(p.Field)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("`%s` = ?", col), []any{p.Str}, nil
	case domain.OpContainsCI:
		col, err := columnOf(p.Field)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("LOWER(`%s`) LIKE ?", col),
			[]any{"%" + strings.ToLower(p.Str) + "%"}, nil
	case domain.OpAfter:
		col, err := columnOf(p.Field)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("(`%s` IS NOT NULL AND `%s` > ?)", col, col),
			[]any{p.Time.UnixMilli()}, nil
	default:
		return "", nil, fmt.Errorf("无法识别的过滤操作: %d", p.Op)
	}
}

func columnOf(field string) (string, error) {
	col, ok := fieldColumns[field]
	if !ok {
		return "", fmt.Errorf("无法过滤的字段: %s", field)
	}
	return col, nil
}

func (g *GORMProductDAO) listBuilder(ctx context.Context, filter domain.Predicate) (*gorm.DB, error) {
	builder := g.db.WithContext(ctx).Model(&Product{}).Where("hidden = ?", false)
	if filter.IsZero() {
		return builder, nil
	}
	cond, args, err := buildWhere(filter)
	if err != nil {
		return nil, err
	}
	return builder.Where(cond, args...), nil
}

func (g *GORMProductDAO) ListByFilter(ctx context.Context, filter domain.Predicate) ([]Product, error) {
	builder, err := g.listBuilder(ctx, filter)
	if err != nil {
		return nil, err
	}
	var res []Product
	err = builder.Order("id DESC").Find(&res).Error
	return res, err
}

func (g *GORMProductDAO) CountByFilter(ctx context.Context, filter domain.Predicate) (int64, error) {
	builder, err := g.listBuilder(ctx, filter)
	if err != nil {
		return 0, err
	}
	var count int64
	err = builder.Count(&count).Error
	return count, err
}

func (g *GORMProductDAO) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Product{}).
		Where("hidden = ?", false).Count(&count).Error
	return count, err
}

func (g *GORMProductDAO) BoostsByProductIds(ctx context.Context, ids []int64) ([]ProductBoost, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var res []ProductBoost
	err := g.db.WithContext(ctx).
		Where("product_id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMProductDAO) FindByCreatorAndName(ctx context.Context, creatorName, productName string) (Product, error) {
	var res Product
	err := g.db.WithContext(ctx).
		Where("creator_name = ? AND hidden = ? AND (name = ? OR source_id = ?)",
			creatorName, false, productName, productName).
		First(&res).Error
	return res, err
}

func (g *GORMProductDAO) IncrViewCnt(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"view_count": gorm.Expr("`view_count` + 1"),
			"utime":      time.Now().UnixMilli(),
		}).Error
}

func (g *GORMProductDAO) IncrPurchased(ctx context.Context, creatorName string, id int64, origin string) (int64, error) {
	now := time.Now().UnixMilli()
	var purchased int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Product{}).
			Where("id = ? AND creator_name = ?", id, creatorName).
			Updates(map[string]any{
				"purchased": gorm.Expr("`purchased` + 1"),
				"utime":     now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return ErrRecordNotFound
		}
		// 流水只追加，不读改写整个数组
		err := tx.Create(&ProductPurchase{
			ProductId:   id,
			Origin:      origin,
			PurchasedAt: now,
		}).Error
		if err != nil {
			return err
		}
		return tx.Model(&Product{}).
			Where("id = ?", id).
			Select("purchased").
			Scan(&purchased).Error
	})
	return purchased, err
}
