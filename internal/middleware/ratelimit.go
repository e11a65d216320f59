package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "serverless-api-template/pkg/errors"
	"serverless-api-template/pkg/response"
)

// RateLimit throttles each client IP. It is a no-op when no limit is set.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil || mw.limiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}

		mw.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", c.ClientIP())
		c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorResp{
			Msg:    pkgErrors.CodeTooManyRequests,
			Errors: []any{map[string]string{"reason": "rate limit exceeded"}},
		})
	}
}

// rateLimiter keeps one token bucket per key, evicting idle keys.
type rateLimiter struct {
	mu       sync.Mutex // serialises bucket creation
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		rl.mu.Lock()
		if limiter, ok = rl.limiters.Get(key); !ok {
			limiter = rate.NewLimiter(rl.rate, rl.burst)
			rl.limiters.Add(key, limiter)
		}
		rl.mu.Unlock()
	}
	return limiter.Allow()
}
