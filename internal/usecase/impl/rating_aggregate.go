package impl

import (
	"context"

	"boral/internal/domain/entity"
	"boral/internal/domain/repository"

	"github.com/pkg/errors"
)

// ratingAggregate keeps Store.Rating and Store.ReviewsCount in line with the store's reviews.
// The recompute is not isolated from concurrent reviewers; the last write wins.
type ratingAggregate struct {
	reviewRepo repository.ReviewRepository
	storeRepo  repository.StoreRepository
}

// refresh recomputes the aggregate from every review of the store and writes it back.
func (a ratingAggregate) refresh(ctx context.Context, storeID string) (entity.RatingSummary, error) {
	summary, err := a.reviewRepo.SummarizeRatings(ctx, storeID)
	if err != nil {
		return entity.RatingSummary{}, errors.Wrap(err, "failed to summarize store ratings")
	}

	if err := a.storeRepo.UpdateRating(ctx, storeID, summary.Average(), summary.Count); err != nil {
		return entity.RatingSummary{}, errors.Wrap(err, "failed to update store rating")
	}

	return summary, nil
}
