// internal/middleware/metrics.go
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/natura-backend/internal/metrics"
)

// Metrics records request counts and latency by route template. Unmatched
// routes share one label. A panicking handler is recorded as a 500 before the
// panic continues to the recovery middleware.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		metrics.RequestStarted()

		defer func() {
			status := c.Writer.Status()
			r := recover()
			if r != nil {
				status = http.StatusInternalServerError
			}

			path := c.FullPath()
			if path == "" {
				path = "unmatched"
			}
			metrics.RequestFinished(c.Request.Method, path, strconv.Itoa(status), time.Since(start).Seconds())

			if r != nil {
				panic(r)
			}
		}()

		c.Next()
	}
}
