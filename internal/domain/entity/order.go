package entity

import (
	"strings"
	"time"

	"boral/internal/errors"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ErrUnknownOrderStatus is returned by ParseOrderStatus for values outside the enumeration.
var ErrUnknownOrderStatus = errors.New("unknown order status")

// ParseOrderStatus converts a raw status string into an OrderStatus.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return "", errors.Wrapf(ErrUnknownOrderStatus, "%q", raw)
	}

	return status, nil
}

// IsValid reports whether the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}

	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem is one line of an order. Exactly one of ProductID or ServiceID is expected.
type OrderItem struct {
	ProductID *string `json:"product_id"`
	ServiceID *string `json:"service_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Name      string  `json:"name"`
}

// Subtotal returns Quantity * Price.
func (i OrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.Price
}

// Order is a purchase placed by a buyer at a store.
type Order struct {
	ID        string      `json:"id"`
	StoreID   string      `json:"store_id"`
	UserID    string      `json:"user_id"` // Buyer.
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	Notes     *string     `json:"notes"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OrderTotal sums the subtotals of items.
func OrderTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}

	return total
}

// OrderStats aggregates all orders of a store.
type OrderStats struct {
	Count   int
	Revenue float64
}
