package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

// 首页是全站流量大头，短 TTL 换掉大部分全表查询。
// 计数的轻微滞后是可接受的
const firstPageExpiration = time.Minute

var ErrFirstPageNotFound = errors.New("目录首页缓存未命中")

// FirstPage 不带任何过滤条件的第一页快照
type FirstPage struct {
	Products []domain.Product
	Total    int64
}

type CatalogCache interface {
	SetFirstPage(ctx context.Context, page FirstPage) error
	GetFirstPage(ctx context.Context) (FirstPage, error)
}

type catalogCache struct {
	ec ecache.Cache
}

func NewCatalogCache(ec ecache.Cache) CatalogCache {
	return &catalogCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "catalog:",
		},
	}
}

func (c *catalogCache) SetFirstPage(ctx context.Context, page FirstPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return errors.Wrap(err, "序列化目录首页失败")
	}
	return c.ec.Set(ctx, c.firstPageKey(), string(data), firstPageExpiration)
}

func (c *catalogCache) GetFirstPage(ctx context.Context) (FirstPage, error) {
	val := c.ec.Get(ctx, c.firstPageKey())
	if val.KeyNotFound() {
		return FirstPage{}, ErrFirstPageNotFound
	}
	if val.Err != nil {
		return FirstPage{}, errors.Wrap(val.Err, "查询目录首页缓存出错")
	}
	var page FirstPage
	if err := json.Unmarshal([]byte(val.Val.(string)), &page); err != nil {
		return FirstPage{}, errors.Wrap(err, "反序列化目录首页失败")
	}
	return page, nil
}

func (c *catalogCache) firstPageKey() string {
	return "first-page"
}
