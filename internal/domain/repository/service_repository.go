package repository

import (
	"context"

	"boral/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrServiceNotFound is returned when a service is not found.
var ErrServiceNotFound = errors.New("service not found")

// ServiceFilter narrows a service listing. Empty fields are ignored.
type ServiceFilter struct {
	StoreID  string
	Category string
	Limit    int
}

// ServiceRepository defines the interface for service-related database operations.
type ServiceRepository interface {
	// Create persists a new service.
	Create(ctx context.Context, svc *entity.Service) error

	// FindByID retrieves a service by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Service, error)

	// List retrieves services matching filter.
	List(ctx context.Context, filter ServiceFilter) ([]*entity.Service, error)

	// Search matches query against name, description and category.
	Search(ctx context.Context, query string, limit int) ([]*entity.Service, error)

	// Update overwrites the owner-editable fields and updated_at.
	Update(ctx context.Context, svc *entity.Service) error

	// Delete removes a service.
	Delete(ctx context.Context, id string) error

	// DeleteByStore removes every service of a store and returns how many were removed.
	DeleteByStore(ctx context.Context, storeID string) (int64, error)
}
