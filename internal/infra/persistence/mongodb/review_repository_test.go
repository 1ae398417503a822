package mongodb

import (
	"testing"
	"time"

	"boral/internal/domain/entity"
	"boral/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_SummarizeRatings(t *testing.T) {
	db := newTestDatabase(t)
	ctx := testContext(t)
	reviews := NewReviewRepository(db)
	stores := NewStoreRepository(db)

	store := newTestStore("s1", "owner")
	require.NoError(t, stores.Create(ctx, store))

	empty, err := reviews.SummarizeRatings(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RatingSummary{}, empty)

	for i, rating := range []int{5, 4, 4} {
		require.NoError(t, reviews.Create(ctx, &entity.Review{
			ID:        store.ID + "-r" + string(rune('a'+i)),
			StoreID:   store.ID,
			UserID:    "reviewer-" + string(rune('a'+i)),
			Rating:    rating,
			CreatedAt: time.Now().UTC(),
		}))
	}
	// Reviews of another store stay out of the summary.
	require.NoError(t, reviews.Create(ctx, &entity.Review{ID: "other-r", StoreID: "s2", UserID: "reviewer-a", Rating: 1}))

	summary, err := reviews.SummarizeRatings(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RatingSummary{Sum: 13, Count: 3}, summary)
	assert.InDelta(t, 4.3, summary.Average(), 1e-9)

	require.NoError(t, stores.UpdateRating(ctx, store.ID, summary.Average(), summary.Count))

	stored, err := stores.FindByID(ctx, store.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.3, stored.Rating, 1e-9)
	assert.Equal(t, 3, stored.ReviewsCount)
}

func TestReviewRepository_OnePerUserPerStore(t *testing.T) {
	db := newTestDatabase(t)
	ctx := testContext(t)
	reviews := NewReviewRepository(db)

	require.NoError(t, reviews.Create(ctx, &entity.Review{ID: "r1", StoreID: "s1", UserID: "alice", Rating: 5}))

	err := reviews.Create(ctx, &entity.Review{ID: "r2", StoreID: "s1", UserID: "alice", Rating: 1})
	require.ErrorIs(t, err, repository.ErrDuplicateReview)

	require.NoError(t, reviews.Create(ctx, &entity.Review{ID: "r3", StoreID: "s2", UserID: "alice", Rating: 3}))

	exists, err := reviews.ExistsForUser(ctx, "s1", "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	summary, err := reviews.SummarizeRatings(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.RatingSummary{Sum: 5, Count: 1}, summary)
}
