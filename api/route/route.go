package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundpulse/soundpulse-backend/api/middleware"
	"github.com/soundpulse/soundpulse-backend/api/route/route_stream"
	"github.com/soundpulse/soundpulse-backend/bootstrap"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_interface"
	"github.com/soundpulse/soundpulse-backend/mongo"
	"github.com/soundpulse/soundpulse-backend/spotify"
)

const responseCacheTTL = time.Hour

// Setup 装配全部路由：公共读接口带响应缓存，用户接口带 JWT 鉴权
func Setup(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	fetcher stream_interface.TableFetcher,
	spotifyClient *spotify.Client,
	cache stream_interface.Cache,
	engine *gin.Engine,
) {
	engine.Use(middleware.Cors())
	engine.Use(middleware.NewRateLimiter(env.RateLimitPerMinute).Middleware())

	publicRouter := engine.Group("/api/v1")
	publicRouter.Use(middleware.ResponseCache(cache, responseCacheTTL))

	route_stream.NewDailyRouter(timeout, fetcher, publicRouter)
	route_stream.NewStatsRouter(timeout, db, publicRouter)
	route_stream.NewCatalogRouter(spotifyClient, publicRouter)

	protectedRouter := engine.Group("/api/v1")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))

	route_stream.NewFavoriteRouter(timeout, db, protectedRouter)
}
