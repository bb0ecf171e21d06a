package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AgroRegistroBR/rural-registry/internal/cache"
)

// RateLimiter limita requisições por IP usando um contador no redis com
// janela fixa. Falha de cache vira 500; a API nunca passa batido sem contar.
func RateLimiter(client cache.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rate-limit:" + c.ClientIP()
		ctx := c.Request.Context()

		count, err := client.GetInt(ctx, key)
		if errors.Is(err, cache.ErrCacheMiss) {
			if err := client.Set(ctx, key, 1, window); err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "rate_limit_unavailable"})
				return
			}
			c.Header("X-RateLimit-Remaining", strconv.Itoa(limit-1))
			c.Next()
			return
		} else if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "rate_limit_unavailable"})
			return
		}

		if count >= limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate_limit_exceeded"})
			return
		}

		if err := client.Incr(ctx, key); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "rate_limit_unavailable"})
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limit-count-1))
		c.Next()
	}
}
