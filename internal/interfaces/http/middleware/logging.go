package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"cxtrack/internal/shared/constants"
	"cxtrack/internal/shared/logger"
)

// Logger logs each request after completion, tagged with the caller and
// organization the auth middleware placed in the context when present.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}

		if orgSlug, ok := c.Get(constants.ContextKeyOrgSlug); ok {
			args = append(args, "org_slug", orgSlug)
		}
		if userID, ok := c.Get(constants.ContextKeyUserID); ok {
			args = append(args, "user_id", userID)
		}
		if requestID := c.GetHeader(constants.HeaderXRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("request completed", args...)
		case status >= 400:
			log.Warnw("request completed", args...)
		default:
			log.Debugw("request completed", args...)
		}
	}
}
