package usecase

import (
	"context"

	"boral/internal/domain/entity"
)

// StoreInput holds every owner-editable store field. It is used for creation and full updates.
type StoreInput struct {
	Name        string
	Description string
	Category    string
	Address     string
	Latitude    float64
	Longitude   float64
	Phone       *string
	Email       *string
	Logo        *string
	CoverImage  *string
}

// ListStoresInput filters the public store listing.
type ListStoresInput struct {
	Category string
	Search   string
}

// NearbyStoresInput is a point and a radius in kilometres. A zero radius selects the default.
type NearbyStoresInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// DeleteStoreOutput reports how many children the store cascade removed.
type DeleteStoreOutput struct {
	ProductsDeleted int64 `json:"products_deleted"`
	ServicesDeleted int64 `json:"services_deleted"`
}

// StoreUsecase defines store browsing and owner management.
type StoreUsecase interface {
	ListStores(ctx context.Context, input ListStoresInput) ([]*entity.Store, error)
	GetStore(ctx context.Context, storeID string) (*entity.Store, error)
	NearbyStores(ctx context.Context, input NearbyStoresInput) ([]*entity.NearbyStore, error)
	MyStores(ctx context.Context, ownerID string) ([]*entity.Store, error)

	// CreateStore opens a store owned by ownerID and marks the owner as a store owner.
	CreateStore(ctx context.Context, ownerID string, input *StoreInput) (*entity.Store, error)
	UpdateStore(ctx context.Context, callerID, storeID string, input *StoreInput) (*entity.Store, error)

	// DeleteStore removes the store, then its products, then its services.
	DeleteStore(ctx context.Context, callerID, storeID string) (*DeleteStoreOutput, error)

	// StoreQRCode renders a PNG QR code linking to the store page.
	StoreQRCode(ctx context.Context, storeID string) ([]byte, error)
}
