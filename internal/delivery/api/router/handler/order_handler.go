package handler

import (
	"log/slog"
	"net/http"

	"boral/internal/delivery/api/middleware"
	"boral/internal/delivery/api/response"
	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest represents one order line
type OrderItemRequest struct {
	ProductID *string `json:"product_id"`
	ServiceID *string `json:"service_id"`
	Quantity  int     `json:"quantity" validate:"gte=0"`
	Price     float64 `json:"price" validate:"gte=0"`
	Name      string  `json:"name" validate:"required"`
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	StoreID string             `json:"store_id" validate:"required"`
	Items   []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes   *string            `json:"notes"`
}

// UpdateOrderStatusRequest represents the body form of a status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrder places an order with the caller as buyer
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		items = append(items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			ServiceID: item.ServiceID,
			Quantity:  quantity,
			Price:     item.Price,
			Name:      item.Name,
		})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), userID, &usecase.CreateOrderInput{
		StoreID: req.StoreID,
		Items:   items,
		Notes:   req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// MyOrders returns the caller's orders, newest first
func (h *OrderHandler) MyOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.orderUC.MyOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// StoreOrders returns the orders of an owned store, newest first
func (h *OrderHandler) StoreOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.orderUC.StoreOrders(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// UpdateOrderStatus changes the status of an order placed with an owned store.
// The status is read from the query string, falling back to the JSON body.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	raw := c.QueryParam("status")
	if raw == "" {
		var req UpdateOrderStatusRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
		}
		raw = req.Status
	}

	status, err := entity.ParseOrderStatus(raw)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidOrderStatus.WrapMessage(err.Error()))
	}

	if _, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), userID, c.Param("id"), status); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Order status updated successfully"})
}
