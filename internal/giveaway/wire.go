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

package giveaway

import (
	"sync"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/giveaway/internal/repository"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/giveaway/internal/repository/dao"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/giveaway/internal/service"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/giveaway/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewEntryRepository,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initDAO(db *egorm.Component) dao.GiveawayEntryDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGiveawayEntryDAO(db)
}
