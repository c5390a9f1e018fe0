package routes

import (
	"github.com/gin-gonic/gin"

	"cxtrack/internal/interfaces/http/handlers"
	"cxtrack/internal/interfaces/http/middleware"
)

// PermissionRouteConfig holds dependencies for permission routes.
type PermissionRouteConfig struct {
	PermissionHandler *handlers.PermissionHandler
	AuthMiddleware    *middleware.AuthMiddleware
	RateLimiter       *middleware.RateLimiter
}

// SetupPermissionRoutes configures permission decision routes.
func SetupPermissionRoutes(engine *gin.Engine, cfg *PermissionRouteConfig) {
	api := engine.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	{
		check := api.Group("/permissions")
		if cfg.RateLimiter != nil {
			check.Use(cfg.RateLimiter.Limit())
		}
		check.POST("/check", cfg.PermissionHandler.CheckPermission)

		api.GET("/calendars/:userID/access", cfg.PermissionHandler.GetCalendarAccess)
	}
}
