package routes

import (
	"github.com/gin-gonic/gin"

	"cxtrack/internal/interfaces/http/handlers"
)

// ModuleRouteConfig holds dependencies for module catalog routes.
type ModuleRouteConfig struct {
	ModuleHandler *handlers.ModuleHandler
}

// SetupModuleRoutes configures the public module catalog routes.
func SetupModuleRoutes(engine *gin.Engine, cfg *ModuleRouteConfig) {
	modules := engine.Group("/api/modules")
	{
		modules.GET("", cfg.ModuleHandler.ListModules)
		modules.GET("/:key", cfg.ModuleHandler.GetModule)
	}
}
