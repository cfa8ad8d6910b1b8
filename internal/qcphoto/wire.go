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

//go:build wireinject

package qcphoto

import (
	"net/http"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/qcphoto/internal/service"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/qcphoto/internal/web"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule() (*Module, error) {
	wire.Build(
		initService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initService() service.Service {
	apiURL := econf.GetString("qcphoto.apiUrl")
	if apiURL == "" {
		apiURL = service.DefaultAPIURL
	}
	return service.NewService(http.DefaultClient,
		apiURL,
		econf.GetString("qcphoto.token"),
		econf.GetString("qcphoto.urlKey"))
}
