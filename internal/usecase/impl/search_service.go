package impl

import (
	"context"
	"strings"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	"boral/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// searchScopeLimit caps the matches returned per scope.
const searchScopeLimit = 50

type searchService struct {
	storeRepo   repository.StoreRepository
	serviceRepo repository.ServiceRepository
	productRepo repository.ProductRepository
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	StoreRepo   repository.StoreRepository
	ServiceRepo repository.ServiceRepository
	ProductRepo repository.ProductRepository
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		storeRepo:   params.StoreRepo,
		serviceRepo: params.ServiceRepo,
		productRepo: params.ProductRepo,
	}
}

// Search runs a case-insensitive substring search over the scopes selected by scope.
func (srv *searchService) Search(ctx context.Context, query string, scope entity.SearchScope) (*usecase.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("search query is required")
	}

	result := &usecase.SearchResult{
		Stores:   []*entity.Store{},
		Services: []*entity.Service{},
		Products: []*entity.Product{},
	}

	if scope.Includes(entity.SearchScopeStores) {
		stores, err := srv.storeRepo.Search(ctx, query, searchScopeLimit)
		if err != nil {
			return nil, errors.Wrap(err, "failed to search stores")
		}
		result.Stores = stores
	}

	if scope.Includes(entity.SearchScopeServices) {
		services, err := srv.serviceRepo.Search(ctx, query, searchScopeLimit)
		if err != nil {
			return nil, errors.Wrap(err, "failed to search services")
		}
		result.Services = services
	}

	if scope.Includes(entity.SearchScopeProducts) {
		products, err := srv.productRepo.Search(ctx, query, searchScopeLimit)
		if err != nil {
			return nil, errors.Wrap(err, "failed to search products")
		}
		result.Products = products
	}

	return result, nil
}
