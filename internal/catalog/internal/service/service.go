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
	"time"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/domain"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/event"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/repository"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultListLimit 目录页默认每页条数
	DefaultListLimit = 100
	// DefaultWeeklyLimit 推广视图默认每页条数
	DefaultWeeklyLimit = 8

	// purchaseOrigin 购买流水的来源标记
	purchaseOrigin = "KakoBuy"
)

var (
	// ErrProductNotFound 单个商品不存在
	ErrProductNotFound = repository.ErrRecordNotFound
	// ErrCatalogEmpty 不带过滤的第一页查不到任何商品。
	// 和"带过滤查到空页"是两回事，后者是正常的空结果
	ErrCatalogEmpty = errors.New("目录里还没有任何商品")
	// ErrNoWeeklyFinds 推广期内没有任何商品
	ErrNoWeeklyFinds = errors.New("本周没有推广商品")
)

// ListParams 列表请求参数，page 从 1 开始
type ListParams struct {
	Search      string
	Category    string
	CreatorName string
	Page        int
	Limit       int
}

// CatalogPage 目录页结果。
// Window.Total 和 TotalAll 来自两个独立查询，并发写入时两者可能轻微漂移，
// 这是接受的最终一致，不用事务去"修"
type CatalogPage struct {
	Products    []domain.Product
	Window      domain.PageWindow
	TotalAll    int64
	EvaluatedAt time.Time
}

// WeeklyPage 推广视图结果。TotalPromoted 是推广期内的总量，
// 不受搜索/分类收窄的影响
type WeeklyPage struct {
	Products      []domain.Product
	Window        domain.PageWindow
	TotalPromoted int64
	NextRefresh   time.Time
	EvaluatedAt   time.Time
}

//go:generate mockgen -source=./service.go -package=svcmocks -destination=mocks/service.mock.go -typed Service
type Service interface {
	List(ctx context.Context, params ListParams) (CatalogPage, error)
	WeeklyFinds(ctx context.Context, params ListParams) (WeeklyPage, error)
	// Detail 读详情并发布一次浏览事件，事件失败不影响读
	Detail(ctx context.Context, creatorName, productName string) (domain.Product, error)
	// Purchase 记一次购买，返回自增后的购买数
	Purchase(ctx context.Context, creatorName string, productID int64) (int64, error)
	IncrViewCnt(ctx context.Context, id int64) error
}

type service struct {
	repo     repository.ProductRepository
	ca       cache.CatalogCache
	producer event.ViewEventProducer
	// boostPage 本站目录对应的展示页标识，加成按它聚合
	boostPage string
	logger    *elog.Component
}

func NewService(repo repository.ProductRepository,
	ca cache.CatalogCache,
	producer event.ViewEventProducer,
	boostPage string) Service {
	return &service{
		repo:      repo,
		ca:        ca,
		producer:  producer,
		boostPage: boostPage,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) List(ctx context.Context, params ListParams) (CatalogPage, error) {
	now := time.Now()
	query := domain.ListQuery{
		Search:      params.Search,
		Category:    params.Category,
		CreatorName: params.CreatorName,
	}

	if s.cacheable(query, params) {
		if page, err := s.ca.GetFirstPage(ctx); err == nil {
			return CatalogPage{
				Products:    page.Products,
				Window:      domain.NewPageWindow(1, DefaultListLimit, DefaultListLimit, int(page.Total)),
				TotalAll:    page.Total,
				EvaluatedAt: now,
			}, nil
		}
	}

	var (
		products []domain.Product
		totalAll int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		products, err = s.repo.ListByFilter(ctx, query.BuildFilter(now))
		return err
	})
	eg.Go(func() error {
		var err error
		totalAll, err = s.repo.CountAll(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return CatalogPage{}, err
	}

	if len(products) == 0 && !query.Filtered() && params.Page <= 1 {
		return CatalogPage{}, ErrCatalogEmpty
	}

	domain.Rank(products, domain.RankGeneral, s.boostPage, now)
	products = domain.ApplyCreatorPriority(products, params.Category, s.boostPage, now)

	window := domain.NewPageWindow(params.Page, params.Limit, DefaultListLimit, len(products))
	pageItems := window.Slice(products)

	if s.cacheable(query, params) {
		err := s.ca.SetFirstPage(ctx, cache.FirstPage{
			Products: pageItems,
			Total:    totalAll,
		})
		if err != nil {
			s.logger.Warn("回填目录首页缓存失败", elog.FieldErr(err))
		}
	}

	return CatalogPage{
		Products:    pageItems,
		Window:      window,
		TotalAll:    totalAll,
		EvaluatedAt: now,
	}, nil
}

// cacheable 只缓存不带过滤的默认第一页
func (s *service) cacheable(query domain.ListQuery, params ListParams) bool {
	return !query.Filtered() &&
		params.Page <= 1 &&
		(params.Limit <= 0 || params.Limit == DefaultListLimit)
}

func (s *service) WeeklyFinds(ctx context.Context, params ListParams) (WeeklyPage, error) {
	now := time.Now()
	query := domain.ListQuery{
		Search:       params.Search,
		Category:     params.Category,
		PromotedOnly: true,
	}

	var (
		products      []domain.Product
		totalPromoted int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		products, err = s.repo.ListByFilter(ctx, query.BuildFilter(now))
		return err
	})
	eg.Go(func() error {
		var err error
		totalPromoted, err = s.repo.CountByFilter(ctx,
			domain.After(domain.FieldPromotedAt, now))
		return err
	})
	if err := eg.Wait(); err != nil {
		return WeeklyPage{}, err
	}

	res := WeeklyPage{
		TotalPromoted: totalPromoted,
		NextRefresh:   domain.NextRefresh(now),
		EvaluatedAt:   now,
	}

	if len(products) == 0 && !query.Filtered() && params.Page <= 1 {
		return res, ErrNoWeeklyFinds
	}

	domain.Rank(products, domain.RankPromoted, s.boostPage, now)
	window := domain.NewPageWindow(params.Page, params.Limit, DefaultWeeklyLimit, len(products))
	res.Products = window.Slice(products)
	res.Window = window
	return res, nil
}

func (s *service) Detail(ctx context.Context, creatorName, productName string) (domain.Product, error) {
	product, err := s.repo.FindByCreatorAndName(ctx, creatorName, productName)
	if err != nil {
		return domain.Product{}, err
	}
	evt := event.ViewEvent{ProductId: product.ID}
	if err := s.producer.Produce(ctx, evt); err != nil {
		// 计数丢了不影响读
		s.logger.Warn("发布浏览事件失败",
			elog.Int64("productId", product.ID), elog.FieldErr(err))
	}
	return product, nil
}

func (s *service) Purchase(ctx context.Context, creatorName string, productID int64) (int64, error) {
	return s.repo.IncrPurchased(ctx, creatorName, productID, purchaseOrigin)
}

func (s *service) IncrViewCnt(ctx context.Context, id int64) error {
	return s.repo.IncrViewCnt(ctx, id)
}
