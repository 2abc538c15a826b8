package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"knowledge-base/internal/metrics"
)

const (
	limiterIdleTTL         = 10 * time.Minute
	limiterCleanupInterval = 5 * time.Minute
)

type clientLimiter struct {
	limiter      *rate.Limiter
	lastAccessed time.Time
}

// ipRateLimiter keeps one token bucket per client IP.
type ipRateLimiter struct {
	mu          sync.Mutex
	limiters    map[string]*clientLimiter
	every       rate.Limit
	burst       int
	lastCleanup time.Time
	now         func() time.Time
}

func newIPRateLimiter(requestsPerMinute, burst int) *ipRateLimiter {
	if burst < 1 {
		burst = requestsPerMinute
	}
	return &ipRateLimiter{
		limiters:    make(map[string]*clientLimiter),
		every:       rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:       burst,
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastCleanup) > limiterCleanupInterval {
		for key, info := range l.limiters {
			if now.Sub(info.lastAccessed) > limiterIdleTTL {
				delete(l.limiters, key)
			}
		}
		l.lastCleanup = now
	}

	info, ok := l.limiters[ip]
	if !ok {
		info = &clientLimiter{limiter: rate.NewLimiter(l.every, l.burst)}
		l.limiters[ip] = info
	}
	info.lastAccessed = now
	return info.limiter.AllowN(now, 1)
}

// RateLimit rejects clients that exceed requestsPerMinute with 429.
// A non-positive requestsPerMinute disables limiting. Stale client buckets
// are dropped lazily while serving.
func RateLimit(requestsPerMinute, burst int) gin.HandlerFunc {
	if requestsPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := newIPRateLimiter(requestsPerMinute, burst)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			metrics.HTTPRateLimited.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, retry later"})
			return
		}
		c.Next()
	}
}
