package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPRecorder receives one observation per served request.
type HTTPRecorder interface {
	RecordHTTPRequest(ctx context.Context, method, path string, status int, duration time.Duration)
}

// MetricsMiddleware records request counts and latencies.
type MetricsMiddleware struct {
	recorder HTTPRecorder
}

// NewMetricsMiddleware creates a new MetricsMiddleware.
func NewMetricsMiddleware(recorder HTTPRecorder) *MetricsMiddleware {
	return &MetricsMiddleware{
		recorder: recorder,
	}
}

// Handler returns a gin middleware that observes each request.
// Requests are labelled by route template, not by raw path.
func (m *MetricsMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.recorder.RecordHTTPRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
