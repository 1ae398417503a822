package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := New()

	m.ObserveHTTPRequest(http.MethodGet, "/api/stores/:id", http.StatusOK, 12*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/stores/:id", http.StatusOK, 30*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/stores/:id", http.StatusNotFound, time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/stores/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/stores/:id", "404")), 0)
}

func TestMetrics_InFlight(t *testing.T) {
	m := New()

	m.IncInFlight()
	m.IncInFlight()
	m.DecInFlight()

	assert.InDelta(t, 1, testutil.ToFloat64(m.httpInFlight), 0)
}

func TestMetrics_AddPush(t *testing.T) {
	m := New()

	m.AddPush("message", 3, 0)
	m.AddPush("message", 0, 2)

	assert.InDelta(t, 3, testutil.ToFloat64(m.pushSent.WithLabelValues("message", "success")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.pushSent.WithLabelValues("message", "failure")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveHTTPRequest(http.MethodPost, "/api/orders", http.StatusCreated, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "boral_http_requests_total")
}
