package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"compliance-assistant/pkg/response"
)

// RateLimit enforces a per-user request budget. Limiter state lives in an
// expiring LRU so idle users are evicted instead of accumulating forever.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.cfg.RateLimit.PerMin
	if perMin <= 0 {
		perMin = defaultRequestsPerMin
	}

	return func(c *gin.Context) {
		sc, ok := ScopeFromContext(c)
		if !ok {
			// Auth runs before RateLimit, so a missing scope means the
			// chain is misordered. Fail closed.
			response.Unauthorized(c)
			c.Abort()
			return
		}

		limiter, ok := m.limiters.Get(sc.UserID)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin)
			m.limiters.Add(sc.UserID, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: user %s exceeded %d requests per minute", sc.UserID, perMin)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
