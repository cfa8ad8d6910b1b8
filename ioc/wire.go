//go:build wireinject

package ioc

import (
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/deadlink"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/giveaway"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/qcphoto"
	"github.com/ecodeclub/ecache"
	mq "github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		initCatalogHandler,
		initGiveawayHandler,
		initQCPhotoHandler,
		initDeadLinkHandler,
		initGinxServer)
	return new(App), nil
}

func initCatalogHandler(db *egorm.Component, ec ecache.Cache, q mq.MQ) *catalog.Handler {
	m, err := catalog.InitModule(db, ec, q)
	if err != nil {
		panic(err)
	}
	return m.Hdl
}

func initGiveawayHandler(db *egorm.Component) *giveaway.Handler {
	m, err := giveaway.InitModule(db)
	if err != nil {
		panic(err)
	}
	return m.Hdl
}

func initQCPhotoHandler() *qcphoto.Handler {
	m, err := qcphoto.InitModule()
	if err != nil {
		panic(err)
	}
	return m.Hdl
}

func initDeadLinkHandler() *deadlink.Handler {
	m, err := deadlink.InitModule()
	if err != nil {
		panic(err)
	}
	return m.Hdl
}
