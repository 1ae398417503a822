package usecase

import (
	"context"

	"boral/internal/domain/entity"
)

// ProductInput holds the fields of a new product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Images      []string
	Stock       int
	Category    string
}

// ProductUpdate is a partial product update. Nil fields are left unchanged.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Images      *[]string
	Stock       *int
	Category    *string
}

// IsEmpty reports whether no field was supplied.
func (u *ProductUpdate) IsEmpty() bool {
	return u == nil || (u.Name == nil && u.Description == nil && u.Price == nil &&
		u.Images == nil && u.Stock == nil && u.Category == nil)
}

// ProductUsecase defines product management and the like mechanism.
type ProductUsecase interface {
	ListStoreProducts(ctx context.Context, storeID string) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
	CreateProduct(ctx context.Context, callerID, storeID string, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, callerID, productID string, update *ProductUpdate) (*entity.Product, error)
	DeleteProduct(ctx context.Context, callerID, productID string) error

	// LikeProduct adds userID to the liker set. It fails with AlreadyLiked when present.
	LikeProduct(ctx context.Context, userID, productID string) (*entity.Product, error)
	// UnlikeProduct removes userID from the liker set. It fails with NotLiked when absent.
	UnlikeProduct(ctx context.Context, userID, productID string) (*entity.Product, error)
}
