package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cxtrack/internal/infrastructure/auth"
	"cxtrack/internal/shared/constants"
	"cxtrack/internal/shared/logger"
	"cxtrack/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and stores the caller's identity and
// organization context on the request.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyOrgSlug, claims.OrgSlug)
		c.Set(constants.ContextKeyUserRole, claims.Role)

		c.Next()
	}
}

// RequireRoles rejects requests whose token role is not in the allowed set.
// It must run after RequireAuth.
func (m *AuthMiddleware) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenRole, exists := c.Get(constants.ContextKeyUserRole)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "role context missing")
			c.Abort()
			return
		}

		for _, role := range roles {
			if tokenRole.(string) == role {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "insufficient role for this operation")
		c.Abort()
	}
}

// RequireOrg rejects requests whose token was minted for a different
// organization than the one addressed in the URL.
func (m *AuthMiddleware) RequireOrg() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		tokenOrg, exists := c.Get(constants.ContextKeyOrgSlug)
		if !exists || slug == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "organization context missing")
			c.Abort()
			return
		}

		if tokenOrg.(string) != slug {
			utils.ErrorResponse(c, http.StatusForbidden, "token does not grant access to this organization")
			c.Abort()
			return
		}

		c.Next()
	}
}
