package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"face-quiz/internal/service"
)

// RateLimitMiddleware corta con 429 las IPs que exceden la cuota de
// análisis. Con limitador nil es un no-op.
func RateLimitMiddleware(limiter service.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
