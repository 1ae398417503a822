package impl

import (
	"context"
	"testing"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	mockRepo "boral/internal/mocks/repository"
	mockService "boral/internal/mocks/service"
	"boral/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storeServiceFixtures struct {
	service     usecase.StoreUsecase
	storeRepo   *mockRepo.MockStoreRepository
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
	serviceRepo *mockRepo.MockServiceRepository
	qrcode      *mockService.MockQRCodeService
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	serviceRepo := mockRepo.NewMockServiceRepository(t)
	qrcode := mockService.NewMockQRCodeService(t)

	svc := NewStoreService(StoreServiceParams{
		StoreRepo:   storeRepo,
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		ServiceRepo: serviceRepo,
		QRCode:      qrcode,
		Logger:      newDiscardLogger(),
	})

	return storeServiceFixtures{
		service:     svc,
		storeRepo:   storeRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		qrcode:      qrcode,
	}
}

func newStoreInput() *usecase.StoreInput {
	return &usecase.StoreInput{
		Name:      "Sahara Crafts",
		Category:  "handmade",
		Address:   "Tripoli",
		Latitude:  32.8872,
		Longitude: 13.1913,
	}
}

func TestStoreService_CreateStore_MarksOwner(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(s *entity.Store) bool {
			return s.OwnerID == "owner-1" && s.Name == "Sahara Crafts" && s.Rating == 0 && s.ReviewsCount == 0
		})).
		Return(nil)
	fx.userRepo.EXPECT().MarkStoreOwner(ctx, "owner-1").Return(nil)

	store, err := fx.service.CreateStore(ctx, "owner-1", newStoreInput())

	require.NoError(t, err)
	assert.NotEmpty(t, store.ID)
	assert.Equal(t, store.CreatedAt, store.UpdatedAt)
}

func TestStoreService_UpdateStore_Guard(t *testing.T) {
	tests := []struct {
		name    string
		stored  *entity.Store
		findErr error
		wantErr *domainerrors.BaseError
	}{
		{
			name:    "absent store is reported before ownership",
			findErr: repository.ErrStoreNotFound,
			wantErr: domainerrors.ErrStoreNotFound,
		},
		{
			name:    "foreign store is forbidden",
			stored:  &entity.Store{ID: "s1", OwnerID: "someone-else"},
			wantErr: domainerrors.ErrNotStoreOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestStoreService(t)
			ctx := context.Background()

			fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(tt.stored, tt.findErr)

			_, err := fx.service.UpdateStore(ctx, "caller", "s1", newStoreInput())

			requireAppError(t, err, tt.wantErr)
			fx.storeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestStoreService_UpdateStore_Owned(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	stored := &entity.Store{ID: "s1", OwnerID: "caller", Name: "Old", Rating: 4.5, ReviewsCount: 2}

	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(stored, nil)
	fx.storeRepo.EXPECT().Update(ctx, stored).Return(nil)

	store, err := fx.service.UpdateStore(ctx, "caller", "s1", newStoreInput())

	require.NoError(t, err)
	assert.Equal(t, "Sahara Crafts", store.Name)
	assert.Equal(t, "caller", store.OwnerID)
	assert.InDelta(t, 4.5, store.Rating, 0.001)
	assert.Equal(t, 2, store.ReviewsCount)
	assert.False(t, store.UpdatedAt.IsZero())
}

func TestStoreService_DeleteStore_Cascade(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1", OwnerID: "caller"}, nil)
	fx.storeRepo.EXPECT().Delete(ctx, "s1").Return(nil)
	fx.productRepo.EXPECT().DeleteByStore(ctx, "s1").Return(int64(2), nil)
	fx.serviceRepo.EXPECT().DeleteByStore(ctx, "s1").Return(int64(1), nil)

	out, err := fx.service.DeleteStore(ctx, "caller", "s1")

	require.NoError(t, err)
	assert.Equal(t, int64(2), out.ProductsDeleted)
	assert.Equal(t, int64(1), out.ServicesDeleted)
}

func TestStoreService_DeleteStore_NotOwner(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1", OwnerID: "owner"}, nil)

	_, err := fx.service.DeleteStore(ctx, "intruder", "s1")

	requireAppError(t, err, domainerrors.ErrNotStoreOwner)
	fx.storeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	fx.productRepo.AssertNotCalled(t, "DeleteByStore", mock.Anything, mock.Anything)
	fx.serviceRepo.AssertNotCalled(t, "DeleteByStore", mock.Anything, mock.Anything)
}

func TestStoreService_DeleteStore_ProductCascadeFails(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1", OwnerID: "caller"}, nil)
	fx.storeRepo.EXPECT().Delete(ctx, "s1").Return(nil)
	fx.productRepo.EXPECT().DeleteByStore(ctx, "s1").Return(int64(0), errors.New("connection reset"))

	_, err := fx.service.DeleteStore(ctx, "caller", "s1")

	require.Error(t, err)
	fx.serviceRepo.AssertNotCalled(t, "DeleteByStore", mock.Anything, mock.Anything)
}

func TestStoreService_NearbyStores(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	// Roughly 1.1km and 3.3km north of the query point, plus one outside the radius in the box corner.
	near := &entity.Store{ID: "near", Latitude: 32.8972, Longitude: 13.1913}
	far := &entity.Store{ID: "far", Latitude: 32.9172, Longitude: 13.1913}
	corner := &entity.Store{ID: "corner", Latitude: 32.9300, Longitude: 13.2440}

	fx.storeRepo.EXPECT().
		ListInBound(ctx, mock.AnythingOfType("orb.Bound"), generalListLimit).
		RunAndReturn(func(_ context.Context, bound orb.Bound, _ int) ([]*entity.Store, error) {
			assert.True(t, bound.Contains(orb.Point{13.1913, 32.8872}))

			return []*entity.Store{far, corner, near}, nil
		})

	got, err := fx.service.NearbyStores(ctx, usecase.NearbyStoresInput{Latitude: 32.8872, Longitude: 13.1913})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "near", got[0].ID)
	assert.Equal(t, "far", got[1].ID)
	assert.InDelta(t, 1.1, got[0].DistanceKm, 0.1)
	assert.InDelta(t, 3.3, got[1].DistanceKm, 0.1)
}

func TestStoreService_NearbyStores_RadiusTooLarge(t *testing.T) {
	fx := createTestStoreService(t)

	_, err := fx.service.NearbyStores(context.Background(), usecase.NearbyStoresInput{RadiusKm: 500})

	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestStoreService_StoreQRCode(t *testing.T) {
	t.Run("existing store", func(t *testing.T) {
		fx := createTestStoreService(t)
		ctx := context.Background()

		fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1"}, nil)
		fx.qrcode.EXPECT().GenerateStoreQR("s1").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := fx.service.StoreQRCode(ctx, "s1")

		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
	})

	t.Run("unknown store", func(t *testing.T) {
		fx := createTestStoreService(t)
		ctx := context.Background()

		fx.storeRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrStoreNotFound)

		_, err := fx.service.StoreQRCode(ctx, "missing")

		requireAppError(t, err, domainerrors.ErrStoreNotFound)
	})
}
