package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"canny-backend/internal/core/auth"
	"canny-backend/internal/core/server"
	"canny-backend/internal/repo"
	"canny-backend/internal/service"
	"canny-backend/internal/transport/http/ez"
	"canny-backend/internal/transport/http/handler"
	mdw "canny-backend/internal/transport/http/middleware"
)

type Options struct {
	MaxInFlight  int64
	MaxBodyBytes int64
}

func (o Options) withDefaults() Options {
	if o.MaxInFlight <= 0 {
		o.MaxInFlight = 300
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = 1 << 20
	}
	return o
}

// Modules 用同一个存储句柄装配全部资源模块
func Modules(db *gorm.DB, jwter *auth.JWTer) []Module {
	users := repo.NewUserRepo(db)
	return []Module{
		handler.NewAuthHandler(service.NewAuthService(users, jwter)),
		handler.NewUserHandler(service.NewUserService(users)),
		handler.NewLearningItemHandler(service.NewLearningItemService(repo.NewLearningItemRepo(db))),
		handler.NewFollowHandler(service.NewFollowService(repo.NewFollowRepo(db))),
		handler.NewFeedHandler(service.NewFeedService(repo.NewFeedRepo(db))),
		handler.NewRecommendationHandler(service.NewRecommendationService(users, repo.NewRecommendationRepo(db))),
	}
}

func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, opt Options) *gin.Engine {
	opt = opt.withDefaults()
	r := server.NewRouter(l)

	r.Use(
		mdw.MaxBodyBytes(opt.MaxBodyBytes),
		mdw.ConcurrencyLimit(opt.MaxInFlight),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 健康检查 / 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// 鉴权分组：同前缀，挂 AuthJWT
	authUser := api.Group("")
	authUser.Use(mdw.AuthJWT(jwter, l))

	MountAll(ez.New(api, l), ez.New(authUser, l), Modules(db, jwter)...)

	return r
}
