package usecase

import (
	"context"

	"boral/internal/domain/entity"
)

// OrderItemInput is one requested order line.
type OrderItemInput struct {
	ProductID *string
	ServiceID *string
	Quantity  int
	Price     float64
	Name      string
}

// CreateOrderInput defines a new order. The total is computed from Items.
type CreateOrderInput struct {
	StoreID string
	Items   []OrderItemInput
	Notes   *string
}

// OrderUsecase defines ordering for buyers and order handling for store owners.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, buyerID string, input *CreateOrderInput) (*entity.Order, error)
	MyOrders(ctx context.Context, buyerID string) ([]*entity.Order, error)
	StoreOrders(ctx context.Context, callerID, storeID string) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, callerID, orderID string, status entity.OrderStatus) (*entity.Order, error)
}
