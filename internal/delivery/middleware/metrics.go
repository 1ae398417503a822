package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPRecorder receives per-request measurements.
type HTTPRecorder interface {
	IncInFlight()
	DecInFlight()
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

// MetricsMiddleware records in-flight requests, counts and latencies by route template.
type MetricsMiddleware struct {
	recorder HTTPRecorder
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(recorder HTTPRecorder) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

// Handle wraps next with the measurements.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		m.recorder.IncInFlight()
		defer m.recorder.DecInFlight()

		err := next(c)
		if err != nil {
			// Let the error handler write the response so the final status is recorded.
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		m.recorder.ObserveHTTPRequest(c.Request().Method, path, c.Response().Status, time.Since(start))

		return nil
	}
}
