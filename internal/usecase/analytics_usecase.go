package usecase

import (
	"context"

	"boral/internal/domain/entity"
)

// StoreAnalytics summarizes the orders and products of one store.
type StoreAnalytics struct {
	TotalOrders       int               `json:"total_orders"`
	TotalRevenue      float64           `json:"total_revenue"`
	ProductsCount     int64             `json:"products_count"`
	TopProducts       []*entity.Product `json:"top_products"`
	AverageOrderValue float64           `json:"average_order_value"`
}

// AnalyticsUsecase defines marketplace-wide rankings and per-store analytics.
type AnalyticsUsecase interface {
	PopularProducts(ctx context.Context, limit int) ([]*entity.Product, error)
	TopRatedStores(ctx context.Context, limit int) ([]*entity.Store, error)
	StoreAnalytics(ctx context.Context, callerID, storeID string) (*StoreAnalytics, error)
}
