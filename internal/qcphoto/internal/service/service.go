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
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/qcphoto/internal/domain"
	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

// DefaultAPIURL 上游质检照片接口
const DefaultAPIURL = "https://open.kakobuy.com/open/pic/qcImage"

var (
	ErrInvalidGoodsURL = errors.New("商品链接不合法")
	// ErrUpstreamFailure 上游返回非成功或者响应没法解析。
	// 只试一次，不重试
	ErrUpstreamFailure = errors.New("上游接口响应异常")
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=mocks/service.mock.go -typed Service
type Service interface {
	// FetchPhotos 拉一个商品的质检照片，逐张解密。
	// 单张解密失败不影响整批，那一张退回上游原始地址
	FetchPhotos(ctx context.Context, goodsURL string) ([]domain.Photo, error)
}

type service struct {
	client *http.Client
	apiURL string
	token  string
	urlKey string
	logger *elog.Component
}

func NewService(client *http.Client, apiURL, token, urlKey string) Service {
	return &service{
		client: client,
		apiURL: apiURL,
		token:  token,
		urlKey: urlKey,
		logger: elog.DefaultLogger,
	}
}

type qcImageReq struct {
	Token    string `json:"token"`
	GoodsUrl string `json:"goodsUrl"`
}

type qcImageResp struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Data    []qcImage `json:"data"`
}

type qcImage struct {
	ImageUrl    string `json:"image_url"`
	ProductName string `json:"product_name"`
	QcDate      string `json:"qc_date"`
}

func (s *service) FetchPhotos(ctx context.Context, goodsURL string) ([]domain.Photo, error) {
	goodsURL = strings.TrimSpace(goodsURL)
	if !strings.HasPrefix(goodsURL, "http") {
		return nil, ErrInvalidGoodsURL
	}
	var resp qcImageResp
	err := httpx.NewRequest(ctx, http.MethodPost, s.apiURL).
		Client(s.client).
		JSONBody(qcImageReq{
			Token:    s.token,
			GoodsUrl: goodsURL,
		}).Do().JSONScan(&resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("%w: %s", ErrUpstreamFailure, resp.Message)
	}
	return slice.Map(resp.Data, func(idx int, item qcImage) domain.Photo {
		return domain.Photo{
			ImageURL:    s.decrypt(item.ImageUrl),
			ProductName: item.ProductName,
			QCDate:      item.QcDate,
		}
	}), nil
}

// decrypt 从图片地址的 data 参数里取密文解密。
// 没有 data 参数或者解密失败都退回原始地址
func (s *service) decrypt(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil {
		return imageURL
	}
	encrypted := u.Query().Get("data")
	if encrypted == "" {
		return imageURL
	}
	decrypted, err := decryptImageURL(encrypted, s.urlKey)
	if err != nil {
		s.logger.Warn("解密质检图片地址失败", elog.FieldErr(err))
		return imageURL
	}
	return decrypted
}
