package repository

import (
	"context"
	"time"

	"boral/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// ListByUser retrieves orders placed by userID, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Order, error)

	// ListByStore retrieves orders placed at storeID, newest first.
	ListByStore(ctx context.Context, storeID string, limit int) ([]*entity.Order, error)

	// UpdateStatus sets the status and updated_at of an order.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, updatedAt time.Time) error

	// StatsByStore counts the orders of a store and sums their totals.
	StatsByStore(ctx context.Context, storeID string) (entity.OrderStats, error)
}
