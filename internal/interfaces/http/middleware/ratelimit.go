package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"secretsanta/internal/shared/logger"
	"secretsanta/internal/shared/utils"
)

// RateLimiter is a Redis-backed fixed-window counter per client IP and scope.
// All instances share Redis, so the limit holds across a deployment.
type RateLimiter struct {
	redisClient redis.Cmdable
	limit       int
	window      time.Duration
	logger      logger.Interface
	now         func() time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window.
func NewRateLimiter(redisClient redis.Cmdable, limit int, window time.Duration, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		limit:       limit,
		window:      window,
		logger:      log,
		now:         time.Now,
	}
}

// Limit returns a middleware enforcing the limit for one scope, usually the
// route name. Requests are let through when Redis is unavailable.
func (rl *RateLimiter) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		windowBucket := rl.now().Unix() / int64(rl.window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%s:%d", scope, c.ClientIP(), windowBucket)

		ctx := c.Request.Context()

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "scope", scope, "error", err)
			c.Next()
			return
		}

		if count == 1 {
			rl.redisClient.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
