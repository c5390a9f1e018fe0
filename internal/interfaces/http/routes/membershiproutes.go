package routes

import (
	"github.com/gin-gonic/gin"

	"cxtrack/internal/interfaces/http/handlers"
	"cxtrack/internal/interfaces/http/middleware"
)

// MembershipRouteConfig holds dependencies for membership routes.
type MembershipRouteConfig struct {
	MembershipHandler *handlers.MembershipHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupMembershipRoutes configures membership provisioning and calendar
// delegation routes.
func SetupMembershipRoutes(engine *gin.Engine, cfg *MembershipRouteConfig) {
	orgs := engine.Group("/api/organizations")
	orgs.Use(cfg.AuthMiddleware.RequireAuth())
	orgs.Use(cfg.AuthMiddleware.RequireOrg())
	{
		orgs.POST("/:slug/members", cfg.MembershipHandler.CreateMembership)
		orgs.POST("/:slug/calendar-delegations", cfg.MembershipHandler.DelegateCalendar)
	}
}
