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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURLKey = "test-url-key"

func newUpstream(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestService_FetchPhotos(t *testing.T) {
	t.Parallel()
	plain := "https://img.example.com/qc/ok.jpg"
	encrypted := encryptImageURL(t, plain, testURLKey)

	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		var req qcImageReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-token", req.Token)
		assert.Equal(t, "https://www.kakobuy.com/item/details?id=1", req.GoodsUrl)
		_ = json.NewEncoder(w).Encode(qcImageResp{
			Status: "success",
			Data: []qcImage{
				{
					ImageUrl:    "https://cdn.example.com/view?data=" + encrypted,
					ProductName: "Jordan 4",
					QcDate:      "2024-03-01",
				},
				{
					// data 参数是坏密文，这一张退回原始地址
					ImageUrl:    "https://cdn.example.com/view?data=not-valid",
					ProductName: "Jordan 4",
					QcDate:      "2024-03-01",
				},
				{
					// 没有 data 参数，原样透传
					ImageUrl:    "https://cdn.example.com/raw.jpg",
					ProductName: "Jordan 4",
					QcDate:      "2024-03-02",
				},
			},
		})
	})

	svc := NewService(http.DefaultClient, server.URL, "test-token", testURLKey)
	photos, err := svc.FetchPhotos(context.Background(),
		"https://www.kakobuy.com/item/details?id=1")
	require.NoError(t, err)
	require.Len(t, photos, 3)
	assert.Equal(t, plain, photos[0].ImageURL)
	assert.Equal(t, "https://cdn.example.com/view?data=not-valid", photos[1].ImageURL)
	assert.Equal(t, "https://cdn.example.com/raw.jpg", photos[2].ImageURL)
	assert.Equal(t, "Jordan 4", photos[0].ProductName)
	assert.Equal(t, "2024-03-01", photos[0].QCDate)
}

func TestService_FetchPhotos_UpstreamError(t *testing.T) {
	t.Parallel()
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(qcImageResp{
			Status:  "error",
			Message: "invalid token",
		})
	})
	svc := NewService(http.DefaultClient, server.URL, "bad-token", testURLKey)
	_, err := svc.FetchPhotos(context.Background(), "https://www.kakobuy.com/item/details?id=1")
	assert.ErrorIs(t, err, ErrUpstreamFailure)
}

func TestService_FetchPhotos_UnparseableUpstream(t *testing.T) {
	t.Parallel()
	server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})
	svc := NewService(http.DefaultClient, server.URL, "test-token", testURLKey)
	_, err := svc.FetchPhotos(context.Background(), "https://www.kakobuy.com/item/details?id=1")
	assert.ErrorIs(t, err, ErrUpstreamFailure)
}

func TestService_FetchPhotos_InvalidGoodsURL(t *testing.T) {
	t.Parallel()
	svc := NewService(http.DefaultClient, DefaultAPIURL, "test-token", testURLKey)
	testCases := []string{"", "   ", "ftp://example.com/item"}
	for _, goodsURL := range testCases {
		_, err := svc.FetchPhotos(context.Background(), goodsURL)
		assert.ErrorIs(t, err, ErrInvalidGoodsURL)
	}
}
