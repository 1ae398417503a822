package repository

import (
	"context"

	"boral/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrLikeConflict is returned when a conditional like/unlike update matched nothing
	// because the liker set changed after it was read.
	ErrLikeConflict = errors.New("like state changed concurrently")
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// ListByStore retrieves products of a store.
	ListByStore(ctx context.Context, storeID string, limit int) ([]*entity.Product, error)

	// CountByStore counts the products of a store.
	CountByStore(ctx context.Context, storeID string) (int64, error)

	// Search matches query against name, description and category.
	Search(ctx context.Context, query string, limit int) ([]*entity.Product, error)

	// ListMostLiked retrieves products ordered by likes descending, optionally scoped to a store.
	ListMostLiked(ctx context.Context, storeID string, limit int) ([]*entity.Product, error)

	// Update overwrites the owner-editable fields and updated_at.
	Update(ctx context.Context, product *entity.Product) error

	// AddLike adds userID to the liker set if absent and sets likes to the new set size.
	// It returns ErrLikeConflict when userID is already present.
	AddLike(ctx context.Context, productID, userID string) (*entity.Product, error)

	// RemoveLike removes userID from the liker set if present and sets likes to the new set size.
	// It returns ErrLikeConflict when userID is absent.
	RemoveLike(ctx context.Context, productID, userID string) (*entity.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id string) error

	// DeleteByStore removes every product of a store and returns how many were removed.
	DeleteByStore(ctx context.Context, storeID string) (int64, error)
}
