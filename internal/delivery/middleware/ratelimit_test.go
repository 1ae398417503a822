package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"boral/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveLimited(rl *RateLimiter, remoteAddr string) int {
	e := echo.New()
	e.POST("/api/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, rl.Limit)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code
}

func TestRateLimiter_Limit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("burst then rejected per client", func(t *testing.T) {
		rl := NewRateLimiter(&config.Config{
			RateLimit: &config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 2},
		}, logger)

		assert.Equal(t, http.StatusOK, serveLimited(rl, "10.0.0.1:1000"))
		assert.Equal(t, http.StatusOK, serveLimited(rl, "10.0.0.1:1001"))
		assert.Equal(t, http.StatusTooManyRequests, serveLimited(rl, "10.0.0.1:1002"))

		// Another client has its own bucket.
		assert.Equal(t, http.StatusOK, serveLimited(rl, "10.0.0.2:1000"))
	})

	t.Run("disabled", func(t *testing.T) {
		rl := NewRateLimiter(&config.Config{}, logger)

		for range 5 {
			assert.Equal(t, http.StatusOK, serveLimited(rl, "10.0.0.1:1000"))
		}
	})
}
