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

package catalog

import (
	"context"
	"sync"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/event"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/repository"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/repository/cache"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/repository/dao"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/service"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog/internal/web"
	"github.com/ecodeclub/ecache"
	mq "github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(
		initDAO,
		cache.NewCatalogCache,
		repository.NewProductRepository,
		event.NewViewEventProducer,
		initService,
		initConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initDAO(db *egorm.Component) dao.ProductDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewProductDAO(db)
}

func initService(repo repository.ProductRepository,
	ca cache.CatalogCache,
	producer event.ViewEventProducer) service.Service {
	return service.NewService(repo, ca, producer, econf.GetString("catalog.boostPage"))
}

func initConsumer(repo repository.ProductRepository, q mq.MQ) *event.ViewEventConsumer {
	consumer, err := event.NewViewEventConsumer(repo, q)
	if err != nil {
		panic(err)
	}
	consumer.Start(context.Background())
	return consumer
}
