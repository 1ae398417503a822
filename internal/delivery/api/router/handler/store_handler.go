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

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler holds dependencies for store handlers
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

// StoreRequest represents the request body for creating or replacing a store
type StoreRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required"`
	Address     string   `json:"address" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Logo        *string  `json:"logo"`
	CoverImage  *string  `json:"cover_image"`
}

func (r *StoreRequest) toInput() *usecase.StoreInput {
	return &usecase.StoreInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Address:     r.Address,
		Latitude:    *r.Latitude,
		Longitude:   *r.Longitude,
		Phone:       r.Phone,
		Email:       r.Email,
		Logo:        r.Logo,
		CoverImage:  r.CoverImage,
	}
}

// NearbyStoresRequest represents the query of a nearby search
type NearbyStoresRequest struct {
	Latitude  float64 `query:"lat" validate:"gte=-90,lte=90"`
	Longitude float64 `query:"lng" validate:"gte=-180,lte=180"`
	RadiusKm  float64 `query:"radius_km" validate:"gte=0"`
}

// ListStores returns stores filtered by category and a name/description substring
func (h *StoreHandler) ListStores(c echo.Context) error {
	stores, err := h.storeUC.ListStores(c.Request().Context(), usecase.ListStoresInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stores)
}

// NearbyStores returns stores within radius_km of lat/lng, nearest first
func (h *StoreHandler) NearbyStores(c echo.Context) error {
	var req NearbyStoresRequest
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &req.Latitude).
		MustFloat64("lng", &req.Longitude).
		Float64("radius_km", &req.RadiusKm).
		BindError()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "lat and lng are required numbers")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	stores, err := h.storeUC.NearbyStores(c.Request().Context(), usecase.NearbyStoresInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RadiusKm:  req.RadiusKm,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stores)
}

// MyStores returns the caller's stores
func (h *StoreHandler) MyStores(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	stores, err := h.storeUC.MyStores(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stores)
}

// GetStore returns one store
func (h *StoreHandler) GetStore(c echo.Context) error {
	store, err := h.storeUC.GetStore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}

// StoreQRCode renders the store share code as PNG
func (h *StoreHandler) StoreQRCode(c echo.Context) error {
	png, err := h.storeUC.StoreQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateStore opens a store owned by the caller
func (h *StoreHandler) CreateStore(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req StoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	store, err := h.storeUC.CreateStore(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, store)
}

// UpdateStore replaces the editable fields of an owned store
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req StoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	store, err := h.storeUC.UpdateStore(c.Request().Context(), userID, c.Param("id"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}

// DeleteStore removes an owned store with its products and services
func (h *StoreHandler) DeleteStore(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.storeUC.DeleteStore(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message":          "Store deleted successfully",
		"products_deleted": output.ProductsDeleted,
		"services_deleted": output.ServicesDeleted,
	})
}
