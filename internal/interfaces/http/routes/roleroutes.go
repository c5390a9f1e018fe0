package routes

import (
	"github.com/gin-gonic/gin"

	"cxtrack/internal/interfaces/http/handlers"
	"cxtrack/internal/interfaces/http/middleware"
)

// RoleRouteConfig holds dependencies for role default grant routes.
type RoleRouteConfig struct {
	RoleHandler    *handlers.RoleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupRoleRoutes configures the role default grant admin routes. Only owners
// and admins may read or edit the grant table.
func SetupRoleRoutes(engine *gin.Engine, cfg *RoleRouteConfig) {
	roles := engine.Group("/api/roles")
	roles.Use(cfg.AuthMiddleware.RequireAuth())
	roles.Use(cfg.AuthMiddleware.RequireRoles("owner", "admin"))
	{
		roles.GET("/:role/permissions", cfg.RoleHandler.GetRoleDefaults)
		roles.POST("/:role/permissions", cfg.RoleHandler.GrantRoleDefault)
		roles.DELETE("/:role/permissions/:permission", cfg.RoleHandler.RevokeRoleDefault)
	}
}
