package impl

import (
	"context"
	"slices"
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

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	storeRepo   *mockRepo.MockStoreRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewProductService(ProductServiceParams{
		StoreRepo:   storeRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{
		service:     svc,
		storeRepo:   storeRepo,
		productRepo: productRepo,
	}
}

// likeLedger is an in-memory product row backing the like/unlike repository calls.
type likeLedger struct {
	product entity.Product
}

func (l *likeLedger) snapshot() *entity.Product {
	p := l.product
	p.LikedBy = slices.Clone(l.product.LikedBy)

	return &p
}

func (l *likeLedger) wire(productRepo *mockRepo.MockProductRepository) {
	productRepo.EXPECT().FindByID(mock.Anything, l.product.ID).
		RunAndReturn(func(context.Context, string) (*entity.Product, error) {
			return l.snapshot(), nil
		}).Maybe()
	productRepo.EXPECT().AddLike(mock.Anything, l.product.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, userID string) (*entity.Product, error) {
			if slices.Contains(l.product.LikedBy, userID) {
				return nil, repository.ErrLikeConflict
			}
			l.product.LikedBy = append(l.product.LikedBy, userID)
			l.product.Likes++

			return l.snapshot(), nil
		}).Maybe()
	productRepo.EXPECT().RemoveLike(mock.Anything, l.product.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, userID string) (*entity.Product, error) {
			idx := slices.Index(l.product.LikedBy, userID)
			if idx < 0 {
				return nil, repository.ErrLikeConflict
			}
			l.product.LikedBy = slices.Delete(l.product.LikedBy, idx, idx+1)
			l.product.Likes--

			return l.snapshot(), nil
		}).Maybe()
}

func TestProductService_LikeSequence(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	ledger := &likeLedger{product: entity.Product{ID: "p1", LikedBy: []string{}}}
	ledger.wire(fx.productRepo)

	p, err := fx.service.LikeProduct(ctx, "alice", "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Likes)
	assert.Equal(t, []string{"alice"}, p.LikedBy)

	_, err = fx.service.LikeProduct(ctx, "alice", "p1")
	requireAppError(t, err, domainerrors.ErrAlreadyLiked)

	p, err = fx.service.LikeProduct(ctx, "bob", "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Likes)

	p, err = fx.service.UnlikeProduct(ctx, "alice", "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Likes)
	assert.Equal(t, []string{"bob"}, p.LikedBy)

	_, err = fx.service.UnlikeProduct(ctx, "alice", "p1")
	requireAppError(t, err, domainerrors.ErrNotLiked)

	assert.Equal(t, len(ledger.product.LikedBy), ledger.product.Likes)
}

func TestProductService_LikeProduct_ConcurrentDuplicate(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, "p1").Return(&entity.Product{ID: "p1"}, nil)
	fx.productRepo.EXPECT().AddLike(ctx, "p1", "alice").Return(nil, repository.ErrLikeConflict)

	_, err := fx.service.LikeProduct(ctx, "alice", "p1")

	requireAppError(t, err, domainerrors.ErrAlreadyLiked)
}

func TestProductService_LikeProduct_UnknownProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.LikeProduct(ctx, "alice", "ghost")

	requireAppError(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_CreateProduct_Guard(t *testing.T) {
	t.Run("absent store", func(t *testing.T) {
		fx := createTestProductService(t)
		ctx := context.Background()
		fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(nil, repository.ErrStoreNotFound)

		_, err := fx.service.CreateProduct(ctx, "caller", "s1", &usecase.ProductInput{Name: "Rug"})

		requireAppError(t, err, domainerrors.ErrStoreNotFound)
		fx.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("foreign store", func(t *testing.T) {
		fx := createTestProductService(t)
		ctx := context.Background()
		fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1", OwnerID: "owner"}, nil)

		_, err := fx.service.CreateProduct(ctx, "caller", "s1", &usecase.ProductInput{Name: "Rug"})

		requireAppError(t, err, domainerrors.ErrNotStoreOwner)
		fx.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("owned store", func(t *testing.T) {
		fx := createTestProductService(t)
		ctx := context.Background()
		fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1", OwnerID: "caller"}, nil)
		fx.productRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
				return p.StoreID == "s1" && p.Likes == 0 && len(p.LikedBy) == 0 && p.Images != nil
			})).
			Return(nil)

		p, err := fx.service.CreateProduct(ctx, "caller", "s1", &usecase.ProductInput{Name: "Rug", Price: 120})

		require.NoError(t, err)
		assert.Equal(t, "Rug", p.Name)
	})
}

func TestProductService_UpdateProduct_Partial(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	stored := &entity.Product{ID: "p1", StoreID: "s1", Name: "Rug", Price: 100, Stock: 3}

	fx.productRepo.EXPECT().FindByID(ctx, "p1").Return(stored, nil)
	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1", OwnerID: "caller"}, nil)
	fx.productRepo.EXPECT().Update(ctx, stored).Return(nil)

	p, err := fx.service.UpdateProduct(ctx, "caller", "p1", &usecase.ProductUpdate{Price: ptr(80.0)})

	require.NoError(t, err)
	assert.InDelta(t, 80.0, p.Price, 0.001)
	assert.Equal(t, "Rug", p.Name)
	assert.Equal(t, 3, p.Stock)
	assert.False(t, p.UpdatedAt.IsZero())
}

func TestProductService_UpdateProduct_EmptyIsNoop(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	stored := &entity.Product{ID: "p1", StoreID: "s1", Name: "Rug"}

	fx.productRepo.EXPECT().FindByID(ctx, "p1").Return(stored, nil)
	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1", OwnerID: "caller"}, nil)

	p, err := fx.service.UpdateProduct(ctx, "caller", "p1", &usecase.ProductUpdate{})

	require.NoError(t, err)
	assert.True(t, p.UpdatedAt.IsZero())
	fx.productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_DeleteProduct_OrphanedProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, "p1").Return(&entity.Product{ID: "p1", StoreID: "gone"}, nil)
	fx.storeRepo.EXPECT().FindByID(ctx, "gone").Return(nil, repository.ErrStoreNotFound)

	err := fx.service.DeleteProduct(ctx, "caller", "p1")

	requireAppError(t, err, domainerrors.ErrStoreNotFound)
	fx.productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
