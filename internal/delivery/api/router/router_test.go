package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"boral/internal/delivery/api/middleware"
	mockUsecase "boral/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	NewRouter(RouterParams{}).RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /health",
		"GET /api/",
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/auth/me",
		"PUT /api/auth/profile",
		"POST /api/auth/upload-avatar",
		"GET /api/stores",
		"GET /api/stores/nearby",
		"GET /api/stores/owner/my-stores",
		"GET /api/stores/:id",
		"GET /api/stores/:id/qrcode",
		"POST /api/stores",
		"PUT /api/stores/:id",
		"DELETE /api/stores/:id",
		"GET /api/stores/:id/products",
		"POST /api/stores/:id/products",
		"GET /api/products/:id",
		"PUT /api/products/:id",
		"DELETE /api/products/:id",
		"POST /api/products/:id/like",
		"DELETE /api/products/:id/like",
		"GET /api/services",
		"GET /api/stores/:id/services",
		"POST /api/stores/:id/services",
		"PUT /api/services/:id",
		"DELETE /api/services/:id",
		"GET /api/messages/conversations",
		"GET /api/messages/:user_id",
		"POST /api/messages",
		"GET /api/stores/:id/reviews",
		"POST /api/stores/:id/reviews",
		"POST /api/orders",
		"GET /api/orders/my-orders",
		"GET /api/stores/:id/orders",
		"PUT /api/orders/:id/status",
		"GET /api/search",
		"GET /api/analytics/popular-products",
		"GET /api/analytics/top-rated-stores",
		"GET /api/stores/:id/analytics",
		"POST /api/upload-image",
		"POST /api/devices",
		"GET /api/devices",
		"PUT /api/devices/:id/token",
		"DELETE /api/devices/:id",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "route %s is not registered", route)
	}
}

func TestRegisterRoutes_ProtectedRoutesRequireToken(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	e := echo.New()
	NewRouter(RouterParams{AuthMiddleware: middleware.NewAuthMiddleware(authUC)}).RegisterRoutes(e)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/stores"},
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/products/p1/like"},
		{http.MethodGet, "/api/messages/conversations"},
		{http.MethodPut, "/api/orders/o1/status"},
		{http.MethodPost, "/api/upload-image"},
		{http.MethodGet, "/api/devices"},
	}

	for _, tt := range protected {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
		})
	}
}
