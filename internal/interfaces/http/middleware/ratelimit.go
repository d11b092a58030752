package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ministryshare/internal/infrastructure/ratelimit"
	"ministryshare/internal/shared/logger"
	"ministryshare/internal/shared/utils"
)

// RateLimit throttles by client IP within the named scope. When the limiter
// backend is unreachable the request passes, so an outage never takes the
// whole API down with it.
func RateLimit(limiter ratelimit.RateLimiter, scope string, cfg ratelimit.Config, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())

		allowed, err := limiter.Allow(key, cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
