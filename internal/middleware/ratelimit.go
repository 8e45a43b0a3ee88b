package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ds611b/practicas/internal/infra/cache"
	"github.com/ds611b/practicas/internal/modules/serializer"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit allows limit requests per client IP in each fixed window, counted in Redis.
// A nil client or a non-positive limit disables it. Redis errors let the request through.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	if rdb == nil || limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := "practicas:ratelimit:" + c.ClientIP()
		n, left, err := cache.Hit(c.Request.Context(), rdb, key, window)
		if err != nil {
			log.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		remaining := int64(limit) - n
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if n > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(left.Round(time.Second).Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, serializer.RateLimitErr())
			return
		}
		c.Next()
	}
}
