package handler

import (
	"log/slog"
	"net/http"

	"boral/internal/delivery/api/middleware"
	"boral/internal/delivery/api/response"
	"boral/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler holds dependencies for ranking and store analytics handlers
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// PopularProducts returns the most liked products
func (h *AnalyticsHandler) PopularProducts(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "limit must be an integer")
	}

	products, err := h.analyticsUC.PopularProducts(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// TopRatedStores returns the highest rated stores
func (h *AnalyticsHandler) TopRatedStores(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "limit must be an integer")
	}

	stores, err := h.analyticsUC.TopRatedStores(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stores)
}

// StoreAnalytics returns order and product figures for an owned store
func (h *AnalyticsHandler) StoreAnalytics(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	stats, err := h.analyticsUC.StoreAnalytics(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
