package routes

import (
	"github.com/gin-gonic/gin"

	poolHandlers "secretsanta/internal/interfaces/http/handlers/pool"
	"secretsanta/internal/interfaces/http/middleware"
)

// PoolRouteConfig holds dependencies for pool routes.
type PoolRouteConfig struct {
	PoolHandler *poolHandlers.Handler
	RateLimiter *middleware.RateLimiter // may be nil
}

// SetupPoolRoutes configures the manage, link-request and reuse routes.
func SetupPoolRoutes(engine *gin.Engine, cfg *PoolRouteConfig) {
	manage := engine.Group("/manage/:listUrl")
	{
		manage.GET("", cfg.PoolHandler.ManagePage)
		manage.POST("/send", cfg.PoolHandler.SendPool)
		manage.POST("/entries/:entryId/resend", cfg.PoolHandler.ResendEntry)
		manage.POST("/admin-matches", cfg.PoolHandler.SendAdminMatches)
	}

	// Link requests mail whoever owns the address, so they are rate limited
	// when Redis is available.
	engine.POST("/forgot-link", withLimit(cfg.RateLimiter, "forgot_link", cfg.PoolHandler.ForgotLink)...)
	engine.POST("/reuse", withLimit(cfg.RateLimiter, "reuse", cfg.PoolHandler.RequestReuse)...)
	engine.GET("/reuse/:listUrl", cfg.PoolHandler.GetReusePool)
}

func withLimit(rl *middleware.RateLimiter, scope string, handler gin.HandlerFunc) []gin.HandlerFunc {
	if rl == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{rl.Limit(scope), handler}
}
