package repository

import (
	"context"

	"boral/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrStoreNotFound is returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreFilter narrows a store listing. Empty fields are ignored.
type StoreFilter struct {
	Category string // Exact match.
	Search   string // Case-insensitive substring of name or description.
	Limit    int
}

// StoreRepository defines the interface for store-related database operations.
type StoreRepository interface {
	// Create persists a new store.
	Create(ctx context.Context, store *entity.Store) error

	// FindByID retrieves a store by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Store, error)

	// List retrieves stores matching filter.
	List(ctx context.Context, filter StoreFilter) ([]*entity.Store, error)

	// ListByOwner retrieves stores owned by ownerID.
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]*entity.Store, error)

	// ListInBound retrieves stores whose coordinates fall inside bound.
	ListInBound(ctx context.Context, bound orb.Bound, limit int) ([]*entity.Store, error)

	// Search matches query against name, description, category and address.
	Search(ctx context.Context, query string, limit int) ([]*entity.Store, error)

	// ListTopRated retrieves stores ordered by rating descending.
	ListTopRated(ctx context.Context, limit int) ([]*entity.Store, error)

	// Update overwrites the owner-editable fields and updated_at.
	Update(ctx context.Context, store *entity.Store) error

	// UpdateRating writes the derived rating fields.
	UpdateRating(ctx context.Context, id string, rating float64, reviewsCount int) error

	// Delete removes a store.
	Delete(ctx context.Context, id string) error
}
