package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"serverless-api-template/pkg/metrics"
)

// Metrics records request counts and latencies per route.
func (mw Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
