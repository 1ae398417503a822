package usecase

import (
	"context"

	"boral/internal/domain/entity"
)

// ReviewInput defines a new store review.
type ReviewInput struct {
	Rating  int
	Comment string
}

// ReviewUsecase defines store reviews and keeps the store rating aggregate current.
type ReviewUsecase interface {
	ListStoreReviews(ctx context.Context, storeID string) ([]*entity.Review, error)

	// CreateReview records author's review and recomputes the store's rating and review count.
	CreateReview(ctx context.Context, author *entity.User, storeID string, input *ReviewInput) (*entity.Review, error)
}
