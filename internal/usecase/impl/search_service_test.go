package impl

import (
	"context"
	"testing"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	mockRepo "boral/internal/mocks/repository"
	"boral/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type searchServiceFixtures struct {
	service     usecase.SearchUsecase
	storeRepo   *mockRepo.MockStoreRepository
	serviceRepo *mockRepo.MockServiceRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestSearchService(t *testing.T) searchServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	serviceRepo := mockRepo.NewMockServiceRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewSearchService(SearchServiceParams{
		StoreRepo:   storeRepo,
		ServiceRepo: serviceRepo,
		ProductRepo: productRepo,
	})

	return searchServiceFixtures{
		service:     svc,
		storeRepo:   storeRepo,
		serviceRepo: serviceRepo,
		productRepo: productRepo,
	}
}

func TestSearchService_AllScopes(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().Search(ctx, "rug", searchScopeLimit).Return([]*entity.Store{{ID: "s1"}}, nil)
	fx.serviceRepo.EXPECT().Search(ctx, "rug", searchScopeLimit).Return([]*entity.Service{}, nil)
	fx.productRepo.EXPECT().Search(ctx, "rug", searchScopeLimit).Return([]*entity.Product{{ID: "p1"}, {ID: "p2"}}, nil)

	result, err := fx.service.Search(ctx, "  rug ", entity.SearchScopeAll)

	require.NoError(t, err)
	assert.Len(t, result.Stores, 1)
	assert.Empty(t, result.Services)
	assert.Len(t, result.Products, 2)
}

func TestSearchService_SingleScopeLeavesOthersEmpty(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().Search(ctx, "lamp", searchScopeLimit).Return([]*entity.Product{{ID: "p1"}}, nil)

	result, err := fx.service.Search(ctx, "lamp", entity.SearchScopeProducts)

	require.NoError(t, err)
	assert.NotNil(t, result.Stores)
	assert.NotNil(t, result.Services)
	assert.Empty(t, result.Stores)
	assert.Len(t, result.Products, 1)
	fx.storeRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	fx.serviceRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchService_EmptyQuery(t *testing.T) {
	fx := createTestSearchService(t)

	_, err := fx.service.Search(context.Background(), "   ", entity.SearchScopeAll)

	requireAppError(t, err, domainerrors.ErrValidationFailed)
}
