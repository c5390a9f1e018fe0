package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogUsecases "cxtrack/internal/application/catalog/usecases"
	entitlementUsecases "cxtrack/internal/application/entitlement/usecases"
	membershipUsecases "cxtrack/internal/application/membership/usecases"
	permissionUsecases "cxtrack/internal/application/permission/usecases"
	"cxtrack/internal/domain/catalog"
	"cxtrack/internal/domain/entitlement"
	"cxtrack/internal/infrastructure/auth"
	"cxtrack/internal/infrastructure/cache"
	"cxtrack/internal/infrastructure/config"
	"cxtrack/internal/infrastructure/permission"
	"cxtrack/internal/infrastructure/repository"
	"cxtrack/internal/interfaces/http/handlers"
	"cxtrack/internal/interfaces/http/middleware"
	"cxtrack/internal/interfaces/http/routes"
	"cxtrack/internal/shared/logger"
)

// Router wires repositories, use cases, handlers and middleware over a Gin
// engine. NewRouter builds the whole graph; SetupRoutes registers endpoints.
type Router struct {
	engine             *gin.Engine
	cfg                *config.Config
	entitlementHandler *handlers.EntitlementHandler
	moduleHandler      *handlers.ModuleHandler
	permissionHandler  *handlers.PermissionHandler
	membershipHandler  *handlers.MembershipHandler
	roleHandler        *handlers.RoleHandler
	authMiddleware     *middleware.AuthMiddleware
	rateLimiter        *middleware.RateLimiter
	log                logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies.
// redisClient may be nil; caching and rate limiting are then disabled.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	orgRepo := repository.NewOrganizationRepository(db, log)
	membershipRepo := repository.NewMembershipRepository(db, log)

	resolver := entitlement.NewDefaultResolver(log)
	registry := catalog.Default()
	if err := registry.Validate(); err != nil {
		return nil, err
	}

	var resultCache entitlementUsecases.ResultCache
	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		resultCache = cache.NewRedisEntitlementCache(redisClient, log)
		rateLimiter = middleware.NewRateLimiter(redisClient, 100, 1*time.Minute)
	}

	enforcer, err := permission.NewEnforcer(db, log)
	if err != nil {
		return nil, err
	}
	if err := permission.InitRolePermissions(enforcer, log); err != nil {
		return nil, err
	}

	resolveUC := entitlementUsecases.NewResolveVisibleModulesUseCase(orgRepo, resolver, resultCache, log)
	trialUC := entitlementUsecases.NewGetTrialStatusUseCase(orgRepo, resolver, log)
	listModulesUC := catalogUsecases.NewListModulesUseCase(registry, log)
	getModuleUC := catalogUsecases.NewGetModuleUseCase(registry, log)
	checkPermissionUC := permissionUsecases.NewCheckPermissionUseCase(membershipRepo, log)
	calendarAccessUC := permissionUsecases.NewGetCalendarAccessUseCase(membershipRepo, log)
	createMembershipUC := membershipUsecases.NewCreateMembershipUseCase(membershipRepo, enforcer, log)
	delegateCalendarUC := membershipUsecases.NewDelegateCalendarUseCase(membershipRepo, log)
	getRoleDefaultsUC := membershipUsecases.NewGetRoleDefaultsUseCase(enforcer, log)
	updateRoleDefaultsUC := membershipUsecases.NewUpdateRoleDefaultsUseCase(enforcer, log)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)

	return &Router{
		engine:             engine,
		cfg:                cfg,
		entitlementHandler: handlers.NewEntitlementHandler(resolveUC, trialUC, log),
		moduleHandler:      handlers.NewModuleHandler(listModulesUC, getModuleUC, log),
		permissionHandler:  handlers.NewPermissionHandler(checkPermissionUC, calendarAccessUC, log),
		membershipHandler:  handlers.NewMembershipHandler(createMembershipUC, delegateCalendarUC, log),
		roleHandler:        handlers.NewRoleHandler(getRoleDefaultsUC, updateRoleDefaultsUC, log),
		authMiddleware:     authMiddleware,
		rateLimiter:        rateLimiter,
		log:                log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupModuleRoutes(r.engine, &routes.ModuleRouteConfig{
		ModuleHandler: r.moduleHandler,
	})

	routes.SetupEntitlementRoutes(r.engine, &routes.EntitlementRouteConfig{
		EntitlementHandler: r.entitlementHandler,
		AuthMiddleware:     r.authMiddleware,
	})

	routes.SetupMembershipRoutes(r.engine, &routes.MembershipRouteConfig{
		MembershipHandler: r.membershipHandler,
		AuthMiddleware:    r.authMiddleware,
	})

	routes.SetupRoleRoutes(r.engine, &routes.RoleRouteConfig{
		RoleHandler:    r.roleHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupPermissionRoutes(r.engine, &routes.PermissionRouteConfig{
		PermissionHandler: r.permissionHandler,
		AuthMiddleware:    r.authMiddleware,
		RateLimiter:       r.rateLimiter,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
