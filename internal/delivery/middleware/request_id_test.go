package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "boral/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "client id reused", incoming: "abc-123", reused: true},
		{name: "missing id generated", incoming: ""},
		{name: "oversized id replaced", incoming: strings.Repeat("x", 200)},
		{name: "id with spaces replaced", incoming: "has spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

			e := echo.New()
			e.Use(m.Process)
			var seen string
			e.GET("/api/stores", func(c echo.Context) error {
				seen = deliverycontext.GetRequestID(c)
				assert.Equal(t, seen, deliverycontext.RequestIDFromContext(c.Request().Context()))
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("listing")
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.reused {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
			assert.Contains(t, logs.String(), `"request_id":"`+seen+`"`)
			assert.Contains(t, logs.String(), `"route":"/api/stores"`)
		})
	}
}

func TestEnrichLogger(t *testing.T) {
	var logs bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&logs, nil))

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(c.Request().Context(), base)))

	deliverycontext.EnrichLogger(c, slog.String("user_id", "alice"))
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("hello")

	assert.Contains(t, logs.String(), `"user_id":"alice"`)
}
