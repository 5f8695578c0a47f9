package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter enforces fixed-window per-IP request caps backed by redis.
// Without a redis client it fails open: traffic passes unlimited.
type RateLimiter struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRateLimiter constructs the limiter; client may be nil.
func NewRateLimiter(client *redis.Client, logger *zap.Logger) *RateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateLimiter{client: client, logger: logger}
}

// Limit returns middleware capping requests to max per window per client IP.
func (rl *RateLimiter) Limit(name string, max int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.client == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())
		count, err := rl.client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			rl.logger.Warn("rate limit store unavailable", zap.String("limiter", name), zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			rl.client.Expire(c.Request.Context(), key, window)
		}
		if count > max {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code": http.StatusTooManyRequests,
				"msg":  "Too many requests, try again later.",
			})
			return
		}

		c.Next()
	}
}
