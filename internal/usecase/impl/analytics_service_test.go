package impl

import (
	"context"
	"testing"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	mockRepo "boral/internal/mocks/repository"
	"boral/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type analyticsServiceFixtures struct {
	service     usecase.AnalyticsUsecase
	storeRepo   *mockRepo.MockStoreRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	svc := NewAnalyticsService(AnalyticsServiceParams{
		StoreRepo:   storeRepo,
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
	})

	return analyticsServiceFixtures{
		service:     svc,
		storeRepo:   storeRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func TestAnalyticsService_RankingLimits(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: defaultRankingLimit},
		{name: "negative", limit: -3, want: defaultRankingLimit},
		{name: "explicit", limit: 25, want: 25},
		{name: "capped", limit: 1000, want: maxRankingLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAnalyticsService(t)
			ctx := context.Background()

			fx.productRepo.EXPECT().ListMostLiked(ctx, "", tt.want).Return([]*entity.Product{}, nil)
			fx.storeRepo.EXPECT().ListTopRated(ctx, tt.want).Return([]*entity.Store{}, nil)

			_, err := fx.service.PopularProducts(ctx, tt.limit)
			require.NoError(t, err)
			_, err = fx.service.TopRatedStores(ctx, tt.limit)
			require.NoError(t, err)
		})
	}
}

func TestAnalyticsService_StoreAnalytics(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	top := []*entity.Product{{ID: "p1", Likes: 9}}

	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1", OwnerID: "owner"}, nil)
	fx.orderRepo.EXPECT().StatsByStore(ctx, "s1").Return(entity.OrderStats{Count: 4, Revenue: 100}, nil)
	fx.productRepo.EXPECT().CountByStore(ctx, "s1").Return(int64(7), nil)
	fx.productRepo.EXPECT().ListMostLiked(ctx, "s1", storeTopProducts).Return(top, nil)

	got, err := fx.service.StoreAnalytics(ctx, "owner", "s1")

	require.NoError(t, err)
	assert.Equal(t, 4, got.TotalOrders)
	assert.InDelta(t, 100.0, got.TotalRevenue, 1e-9)
	assert.InDelta(t, 25.0, got.AverageOrderValue, 1e-9)
	assert.Equal(t, int64(7), got.ProductsCount)
	assert.Equal(t, top, got.TopProducts)
}

func TestAnalyticsService_StoreAnalytics_NoOrders(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1", OwnerID: "owner"}, nil)
	fx.orderRepo.EXPECT().StatsByStore(ctx, "s1").Return(entity.OrderStats{}, nil)
	fx.productRepo.EXPECT().CountByStore(ctx, "s1").Return(int64(0), nil)
	fx.productRepo.EXPECT().ListMostLiked(ctx, "s1", storeTopProducts).Return(nil, nil)

	got, err := fx.service.StoreAnalytics(ctx, "owner", "s1")

	require.NoError(t, err)
	assert.Zero(t, got.AverageOrderValue)
}

func TestAnalyticsService_StoreAnalytics_Guard(t *testing.T) {
	t.Run("absent store", func(t *testing.T) {
		fx := createTestAnalyticsService(t)
		ctx := context.Background()
		fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(nil, repository.ErrStoreNotFound)

		_, err := fx.service.StoreAnalytics(ctx, "owner", "s1")

		requireAppError(t, err, domainerrors.ErrStoreNotFound)
	})

	t.Run("foreign store", func(t *testing.T) {
		fx := createTestAnalyticsService(t)
		ctx := context.Background()
		fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1", OwnerID: "owner"}, nil)

		_, err := fx.service.StoreAnalytics(ctx, "intruder", "s1")

		requireAppError(t, err, domainerrors.ErrNotStoreOwner)
		fx.orderRepo.AssertNotCalled(t, "StatsByStore", mock.Anything, mock.Anything)
	})
}
