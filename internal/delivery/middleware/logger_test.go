package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"boral/config"
	domainerrors "boral/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		handler echo.HandlerFunc
		wantLog string
	}{
		{
			name:  "debug logs successful requests",
			debug: true,
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			wantLog: `"status":200`,
		},
		{
			name: "quiet mode skips client errors",
			handler: func(c echo.Context) error {
				return domainerrors.ErrStoreNotFound
			},
		},
		{
			name: "quiet mode still logs server errors",
			handler: func(c echo.Context) error {
				return domainerrors.ErrInternalError
			},
			wantLog: `"status":500`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)), cfg)

			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/stores/s1", nil), httptest.NewRecorder())
			_ = m.Handle(tt.handler)(c)

			if tt.wantLog == "" {
				assert.Empty(t, logs.String())
				return
			}
			assert.Contains(t, logs.String(), tt.wantLog)
		})
	}
}
