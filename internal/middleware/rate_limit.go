package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"chat-orchestrator/pkg/response"
)

// RateLimit bounds request rate per client IP. Limiters live in an
// expirable LRU so idle clients drop out on their own.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	perSecond := rate.Limit(float64(mw.config.PerMinute) / 60.0)
	burst := mw.config.Burst
	if burst <= 0 {
		burst = 1
	}

	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := mw.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(perSecond, burst)
			mw.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests",
			})
			return
		}

		c.Next()
	}
}
