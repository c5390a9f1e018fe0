package routes

import (
	"github.com/gin-gonic/gin"

	"cxtrack/internal/interfaces/http/handlers"
	"cxtrack/internal/interfaces/http/middleware"
)

// EntitlementRouteConfig holds dependencies for entitlement routes.
type EntitlementRouteConfig struct {
	EntitlementHandler *handlers.EntitlementHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// SetupEntitlementRoutes configures per-organization entitlement routes.
func SetupEntitlementRoutes(engine *gin.Engine, cfg *EntitlementRouteConfig) {
	orgs := engine.Group("/api/organizations")
	orgs.Use(cfg.AuthMiddleware.RequireAuth())
	orgs.Use(cfg.AuthMiddleware.RequireOrg())
	{
		orgs.GET("/:slug/modules", cfg.EntitlementHandler.GetModules)
		orgs.GET("/:slug/trial", cfg.EntitlementHandler.GetTrialStatus)
	}
}
