package mongodb

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"boral/internal/domain/entity"
	"boral/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(storeID string) *entity.Product {
	now := time.Now().UTC()

	return &entity.Product{
		ID:        "p-" + storeID + "-" + now.Format("150405.000000000"),
		Name:      "Cardamom coffee",
		Price:     12.5,
		Stock:     3,
		Category:  "drinks",
		StoreID:   storeID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func requireLikesMatchLikers(t *testing.T, p *entity.Product) {
	t.Helper()
	require.Equal(t, len(p.LikedBy), p.Likes, "likes must equal the liker set size")
}

func TestProductRepository_LikeLedger(t *testing.T) {
	db := newTestDatabase(t)
	ctx := testContext(t)
	repo := NewProductRepository(db)

	product := newTestProduct("s1")
	require.NoError(t, repo.Create(ctx, product))

	liked, err := repo.AddLike(ctx, product.ID, "alice")
	require.NoError(t, err)
	requireLikesMatchLikers(t, liked)
	assert.Equal(t, 1, liked.Likes)

	_, err = repo.AddLike(ctx, product.ID, "alice")
	require.ErrorIs(t, err, repository.ErrLikeConflict)

	stored, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	requireLikesMatchLikers(t, stored)
	assert.Equal(t, 1, stored.Likes)

	liked, err = repo.AddLike(ctx, product.ID, "bob")
	require.NoError(t, err)
	requireLikesMatchLikers(t, liked)
	assert.ElementsMatch(t, []string{"alice", "bob"}, liked.LikedBy)

	unliked, err := repo.RemoveLike(ctx, product.ID, "alice")
	require.NoError(t, err)
	requireLikesMatchLikers(t, unliked)
	assert.Equal(t, []string{"bob"}, unliked.LikedBy)

	_, err = repo.RemoveLike(ctx, product.ID, "alice")
	require.ErrorIs(t, err, repository.ErrLikeConflict)

	unliked, err = repo.RemoveLike(ctx, product.ID, "bob")
	require.NoError(t, err)
	requireLikesMatchLikers(t, unliked)
	assert.Zero(t, unliked.Likes)

	_, err = repo.RemoveLike(ctx, product.ID, "bob")
	require.ErrorIs(t, err, repository.ErrLikeConflict)

	stored, err = repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.Likes)
	assert.Empty(t, stored.LikedBy)
}

func TestProductRepository_ConcurrentLikesCountOnce(t *testing.T) {
	db := newTestDatabase(t)
	ctx := testContext(t)
	repo := NewProductRepository(db)

	product := newTestProduct("s1")
	require.NoError(t, repo.Create(ctx, product))

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.AddLike(ctx, product.ID, "alice"); err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, succeeded.Load())

	stored, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	requireLikesMatchLikers(t, stored)
	assert.Equal(t, 1, stored.Likes)
}

func TestProductRepository_LikeMissingProduct(t *testing.T) {
	db := newTestDatabase(t)
	ctx := testContext(t)

	_, err := NewProductRepository(db).AddLike(ctx, "ghost", "alice")

	require.ErrorIs(t, err, repository.ErrLikeConflict)
}
