package handler

import (
	"net/http"
	"testing"

	"boral/internal/domain/entity"
	mockUsecase "boral/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsHandler_PopularProducts(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantLimit int
	}{
		{name: "default", target: "/api/analytics/popular-products", wantLimit: 0},
		{name: "explicit", target: "/api/analytics/popular-products?limit=5", wantLimit: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyticsUC := mockUsecase.NewMockAnalyticsUsecase(t)
			h := NewAnalyticsHandler(AnalyticsHandlerParams{AnalyticsUC: analyticsUC})
			analyticsUC.EXPECT().PopularProducts(mock.Anything, tt.wantLimit).
				Return([]*entity.Product{{ID: "p1", Likes: 9}}, nil).
				Once()

			c, rec := newContext(http.MethodGet, tt.target, "", nil)
			require.NoError(t, h.PopularProducts(c))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestAnalyticsHandler_TopRatedStores_BadLimit(t *testing.T) {
	h := NewAnalyticsHandler(AnalyticsHandlerParams{AnalyticsUC: mockUsecase.NewMockAnalyticsUsecase(t)})

	c, rec := newContext(http.MethodGet, "/api/analytics/top-rated-stores?limit=ten", "", nil)
	require.NoError(t, h.TopRatedStores(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
