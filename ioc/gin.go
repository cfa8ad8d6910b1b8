package ioc

import (
	"net/http"
	"strings"

	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/catalog"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/deadlink"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/giveaway"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/pkg/middleware"
	"github.com/chinesejamie/kakobuyspreadsheets.net/internal/qcphoto"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

// 目录站没有登录态，所有路由都是公开的
func initGinxServer(
	catalogHdl *catalog.Handler,
	giveawayHdl *giveaway.Handler,
	qcHdl *qcphoto.Handler,
	deadlinkHdl *deadlink.Handler,
) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "kakobuyspreadsheets.net")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	catalogHdl.PublicRoutes(res.Engine)
	giveawayHdl.PublicRoutes(res.Engine)
	qcHdl.PublicRoutes(res.Engine)
	deadlinkHdl.PublicRoutes(res.Engine)
	return res
}
