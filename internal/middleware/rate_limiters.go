package middleware

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/recipefinder-api/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterInfo is a struct that holds a rate limiter and the last time it was seen.
type limiterInfo struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func (i *limiterInfo) touch() {
	i.lastSeen.Store(time.Now().UnixNano())
}

func (i *limiterInfo) idleFor() time.Duration {
	return time.Since(time.Unix(0, i.lastSeen.Load()))
}

// RateLimitByIP applies a token bucket of rps and burst per client IP.
// Buckets idle for longer than expiration are dropped every cleanupInterval.
func RateLimitByIP(rps float64, burst int, cleanupInterval time.Duration, expiration time.Duration) gin.HandlerFunc {
	var limiters sync.Map

	// Cleanup goroutine
	go func() {
		for range time.Tick(cleanupInterval) {
			limiters.Range(func(key, value interface{}) bool {
				if value.(*limiterInfo).idleFor() > expiration {
					limiters.Delete(key)
				}
				return true
			})
		}
	}()

	if burst < 1 {
		burst = 1
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()

		// Use LoadOrStore to ensure thread safety
		actual, _ := limiters.LoadOrStore(ip, &limiterInfo{
			limiter: rate.NewLimiter(rate.Limit(rps), burst),
		})

		info := actual.(*limiterInfo)
		info.touch()

		if !info.limiter.Allow() {
			logger.FromContext(c.Request.Context()).Warn("rate limit exceeded", zap.String("ip", ip))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
