package usecase

import (
	"context"

	"boral/internal/domain/entity"
)

// SearchResult groups matches per collection. Scopes that were not searched stay empty.
type SearchResult struct {
	Stores   []*entity.Store   `json:"stores"`
	Services []*entity.Service `json:"services"`
	Products []*entity.Product `json:"products"`
}

// SearchUsecase defines free-text search across stores, services and products.
type SearchUsecase interface {
	Search(ctx context.Context, query string, scope entity.SearchScope) (*SearchResult, error)
}
