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

// ServiceHandlerParams holds dependencies for ServiceHandler, injected by Fx.
type ServiceHandlerParams struct {
	fx.In

	ServiceUC usecase.ServiceUsecase
	Logger    *slog.Logger
}

// ServiceHandler holds dependencies for store service handlers
type ServiceHandler struct {
	serviceUC usecase.ServiceUsecase
	logger    *slog.Logger
}

// NewServiceHandler is the constructor for ServiceHandler
func NewServiceHandler(params ServiceHandlerParams) *ServiceHandler {
	return &ServiceHandler{
		serviceUC: params.ServiceUC,
		logger:    params.Logger,
	}
}

// ServiceRequest represents the request body for creating or replacing a service
type ServiceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Duration    *string `json:"duration"`
	Category    string  `json:"category" validate:"required"`
	Image       *string `json:"image"`
}

func (r *ServiceRequest) toInput() *usecase.ServiceInput {
	return &usecase.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		Category:    r.Category,
		Image:       r.Image,
	}
}

// ListServices returns services, optionally filtered by category
func (h *ServiceHandler) ListServices(c echo.Context) error {
	services, err := h.serviceUC.ListServices(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, services)
}

// ListStoreServices returns the services of a store
func (h *ServiceHandler) ListStoreServices(c echo.Context) error {
	services, err := h.serviceUC.ListStoreServices(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, services)
}

// CreateService adds a service to an owned store
func (h *ServiceHandler) CreateService(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	service, err := h.serviceUC.CreateService(c.Request().Context(), userID, c.Param("id"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, service)
}

// UpdateService replaces the editable fields of an owned service
func (h *ServiceHandler) UpdateService(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	service, err := h.serviceUC.UpdateService(c.Request().Context(), userID, c.Param("id"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, service)
}

// DeleteService removes an owned service
func (h *ServiceHandler) DeleteService(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.serviceUC.DeleteService(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Service deleted successfully"})
}
