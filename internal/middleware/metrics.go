// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"knowledge-base/internal/metrics"
)

// unmeteredPaths are scrape and probe endpoints left out of the HTTP metrics.
var unmeteredPaths = map[string]bool{
	"/metrics": true,
	"/live":    true,
	"/ready":   true,
}

// Metrics returns a Gin middleware that records request count, duration and
// in-flight requests. Paths are labelled by route template so
// /articles/:resourceKey is one series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if unmeteredPaths[c.FullPath()] {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}
