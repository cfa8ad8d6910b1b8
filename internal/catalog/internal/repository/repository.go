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
	"encoding/json"
	"time"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/domain"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type ProductRepository interface {
	// ListByFilter 返回过滤后的商品，已带上各自的加成记录
	ListByFilter(ctx context.Context, filter domain.Predicate) ([]domain.Product, error)
	CountByFilter(ctx context.Context, filter domain.Predicate) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	FindByCreatorAndName(ctx context.Context, creatorName, productName string) (domain.Product, error)
	IncrViewCnt(ctx context.Context, id int64) error
	IncrPurchased(ctx context.Context, creatorName string, id int64, origin string) (int64, error)
}

type productRepository struct {
	productDao dao.ProductDAO
	logger     *elog.Component
}

func NewProductRepository(productDao dao.ProductDAO) ProductRepository {
	return &productRepository{
		productDao: productDao,
		logger:     elog.DefaultLogger,
	}
}

func (r *productRepository) ListByFilter(ctx context.Context, filter domain.Predicate) ([]domain.Product, error) {
	entities, err := r.productDao.ListByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	ids := slice.Map(entities, func(idx int, p dao.Product) int64 {
		return p.Id
	})
	boosts, err := r.productDao.BoostsByProductIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	boostMap := make(map[int64][]domain.Boost, len(entities))
	for _, b := range boosts {
		boostMap[b.ProductId] = append(boostMap[b.ProductId], domain.Boost{
			Page:       b.BoostPage,
			Amount:     b.Amount,
			ValidUntil: time.UnixMilli(b.ValidUntil),
		})
	}
	return slice.Map(entities, func(idx int, p dao.Product) domain.Product {
		res := r.toDomain(p)
		res.Boosts = boostMap[p.Id]
		return res
	}), nil
}

func (r *productRepository) CountByFilter(ctx context.Context, filter domain.Predicate) (int64, error) {
	return r.productDao.CountByFilter(ctx, filter)
}

func (r *productRepository) CountAll(ctx context.Context) (int64, error) {
	return r.productDao.CountAll(ctx)
}

func (r *productRepository) FindByCreatorAndName(ctx context.Context, creatorName, productName string) (domain.Product, error) {
	entity, err := r.productDao.FindByCreatorAndName(ctx, creatorName, productName)
	if err != nil {
		return domain.Product{}, err
	}
	return r.toDomain(entity), nil
}

func (r *productRepository) IncrViewCnt(ctx context.Context, id int64) error {
	return r.productDao.IncrViewCnt(ctx, id)
}

func (r *productRepository) IncrPurchased(ctx context.Context, creatorName string, id int64, origin string) (int64, error) {
	return r.productDao.IncrPurchased(ctx, creatorName, id, origin)
}

func (r *productRepository) toDomain(p dao.Product) domain.Product {
	var images []string
	if p.Images != "" {
		// 爬虫写入的脏数据不拦整条记录，按没有图片处理
		if err := json.Unmarshal([]byte(p.Images), &images); err != nil {
			r.logger.Warn("解析商品图片列表失败",
				elog.Int64("id", p.Id), elog.FieldErr(err))
			images = nil
		}
	}
	res := domain.Product{
		ID:          p.Id,
		SourceID:    p.SourceId,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Link:        p.Link,
		Category:    p.Category,
		CreatorName: p.CreatorName,
		Store:       p.Store,
		Images:      images,
		Hidden:      p.Hidden,
		ViewCount:   p.ViewCount,
		Purchased:   p.Purchased,
		Ctime:       time.UnixMilli(p.Ctime),
		Utime:       time.UnixMilli(p.Utime),
	}
	if p.FindsOfTheWeekUntil.Valid {
		res.FindsOfTheWeekUntil = time.UnixMilli(p.FindsOfTheWeekUntil.Int64)
	}
	return res
}
