package impl

import (
	"context"

	"boral/internal/domain/entity"
	"boral/internal/domain/repository"
	"boral/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRankingLimit = 10
	maxRankingLimit     = 100
	storeTopProducts    = 5
)

type analyticsService struct {
	storeGuard

	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		storeGuard:  storeGuard{storeRepo: params.StoreRepo},
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
	}
}

// PopularProducts ranks products by likes.
func (srv *analyticsService) PopularProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListMostLiked(ctx, "", clampRankingLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list popular products")
	}

	return products, nil
}

// TopRatedStores ranks stores by rating.
func (srv *analyticsService) TopRatedStores(ctx context.Context, limit int) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.ListTopRated(ctx, clampRankingLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top rated stores")
	}

	return stores, nil
}

// StoreAnalytics summarizes orders and products of a store owned by callerID.
func (srv *analyticsService) StoreAnalytics(ctx context.Context, callerID, storeID string) (*usecase.StoreAnalytics, error) {
	if _, err := srv.requireStoreOwner(ctx, storeID, callerID); err != nil {
		return nil, err
	}

	stats, err := srv.orderRepo.StatsByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute store order stats")
	}

	productsCount, err := srv.productRepo.CountByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count store products")
	}

	topProducts, err := srv.productRepo.ListMostLiked(ctx, storeID, storeTopProducts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store top products")
	}

	var average float64
	if stats.Count > 0 {
		average = stats.Revenue / float64(stats.Count)
	}

	return &usecase.StoreAnalytics{
		TotalOrders:       stats.Count,
		TotalRevenue:      stats.Revenue,
		ProductsCount:     productsCount,
		TopProducts:       topProducts,
		AverageOrderValue: average,
	}, nil
}

// clampRankingLimit applies the default to non-positive limits and caps large ones.
func clampRankingLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultRankingLimit
	case limit > maxRankingLimit:
		return maxRankingLimit
	default:
		return limit
	}
}
