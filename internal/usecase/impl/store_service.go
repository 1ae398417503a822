package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	deliverycontext "boral/internal/delivery/context"
	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	"boral/internal/domain/service"
	"boral/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// ownerListLimit caps the owner-scoped listings (my stores, my orders).
	ownerListLimit = 100
	// generalListLimit caps every other listing.
	generalListLimit = 1000

	defaultNearbyRadiusKm = 5.0
	maxNearbyRadiusKm     = 50.0
)

type storeService struct {
	storeGuard

	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	serviceRepo repository.ServiceRepository
	qrcode      service.QRCodeService
	logger      *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo   repository.StoreRepository
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	ServiceRepo repository.ServiceRepository
	QRCode      service.QRCodeService
	Logger      *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeGuard:  storeGuard{storeRepo: params.StoreRepo},
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		serviceRepo: params.ServiceRepo,
		qrcode:      params.QRCode,
		logger:      params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStores lists stores by exact category and name/description substring.
func (srv *storeService) ListStores(ctx context.Context, input usecase.ListStoresInput) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.List(ctx, repository.StoreFilter{
		Category: input.Category,
		Search:   input.Search,
		Limit:    generalListLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// GetStore returns a store or StoreNotFound.
func (srv *storeService) GetStore(ctx context.Context, storeID string) (*entity.Store, error) {
	return srv.findStore(ctx, storeID)
}

// NearbyStores returns stores within the radius, closest first.
// Candidates come from the bounding box around the point and are then filtered by great-circle distance.
func (srv *storeService) NearbyStores(ctx context.Context, input usecase.NearbyStoresInput) ([]*entity.NearbyStore, error) {
	radiusKm := input.RadiusKm
	if radiusKm <= 0 {
		radiusKm = defaultNearbyRadiusKm
	}
	if radiusKm > maxNearbyRadiusKm {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("radius_km exceeds the maximum")
	}

	center := orb.Point{input.Longitude, input.Latitude}
	radiusMeters := radiusKm * 1000
	bound := geo.NewBoundAroundPoint(center, radiusMeters)

	candidates, err := srv.storeRepo.ListInBound(ctx, bound, generalListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores in bound")
	}

	nearby := make([]*entity.NearbyStore, 0, len(candidates))
	for _, store := range candidates {
		distance := geo.DistanceHaversine(center, orb.Point{store.Longitude, store.Latitude})
		if distance > radiusMeters {
			continue
		}
		nearby = append(nearby, &entity.NearbyStore{Store: store, DistanceKm: distance / 1000})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby, nil
}

// MyStores lists the stores owned by ownerID.
func (srv *storeService) MyStores(ctx context.Context, ownerID string) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.ListByOwner(ctx, ownerID, ownerListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner stores")
	}

	return stores, nil
}

// CreateStore opens a store for ownerID and flags the owner's account.
func (srv *storeService) CreateStore(ctx context.Context, ownerID string, input *usecase.StoreInput) (*entity.Store, error) {
	now := time.Now().UTC()
	store := &entity.Store{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyStoreInput(store, input)

	if err := srv.storeRepo.Create(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to create store")
	}

	if err := srv.userRepo.MarkStoreOwner(ctx, ownerID); err != nil {
		return nil, errors.Wrap(err, "failed to mark user as store owner")
	}

	srv.log(ctx).Info("Store created", slog.String("storeID", store.ID), slog.String("ownerID", ownerID))

	return store, nil
}

// UpdateStore replaces every owner-editable field and bumps updated_at.
func (srv *storeService) UpdateStore(ctx context.Context, callerID, storeID string, input *usecase.StoreInput) (*entity.Store, error) {
	store, err := srv.requireStoreOwner(ctx, storeID, callerID)
	if err != nil {
		return nil, err
	}

	applyStoreInput(store, input)
	store.UpdatedAt = time.Now().UTC()

	if err := srv.storeRepo.Update(ctx, store); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("store deleted during update")
		}

		return nil, errors.Wrap(err, "failed to update store")
	}

	return store, nil
}

// DeleteStore removes the store, then its products, then its services. Reviews and orders are kept.
// The cascade is best-effort: a failure part way leaves the earlier deletions in place.
func (srv *storeService) DeleteStore(ctx context.Context, callerID, storeID string) (*usecase.DeleteStoreOutput, error) {
	if _, err := srv.requireStoreOwner(ctx, storeID, callerID); err != nil {
		return nil, err
	}

	if err := srv.storeRepo.Delete(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("store already deleted")
		}

		return nil, errors.Wrap(err, "failed to delete store")
	}

	productsDeleted, err := srv.productRepo.DeleteByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete store products")
	}

	servicesDeleted, err := srv.serviceRepo.DeleteByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete store services")
	}

	srv.log(ctx).Info("Store deleted",
		slog.String("storeID", storeID),
		slog.Int64("products", productsDeleted),
		slog.Int64("services", servicesDeleted),
	)

	return &usecase.DeleteStoreOutput{
		ProductsDeleted: productsDeleted,
		ServicesDeleted: servicesDeleted,
	}, nil
}

// StoreQRCode renders the share code of an existing store.
func (srv *storeService) StoreQRCode(ctx context.Context, storeID string) ([]byte, error) {
	if _, err := srv.findStore(ctx, storeID); err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateStoreQR(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return png, nil
}

func applyStoreInput(store *entity.Store, input *usecase.StoreInput) {
	store.Name = input.Name
	store.Description = input.Description
	store.Category = input.Category
	store.Address = input.Address
	store.Latitude = input.Latitude
	store.Longitude = input.Longitude
	store.Phone = input.Phone
	store.Email = input.Email
	store.Logo = input.Logo
	store.CoverImage = input.CoverImage
}
