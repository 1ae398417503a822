package repository

import (
	"context"

	"boral/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDuplicateReview is returned when the user has already reviewed the store.
var ErrDuplicateReview = errors.New("review already exists")

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// Create persists a new review. It returns ErrDuplicateReview on a second review for the same (store, user).
	Create(ctx context.Context, review *entity.Review) error

	// ExistsForUser reports whether userID has reviewed storeID.
	ExistsForUser(ctx context.Context, storeID, userID string) (bool, error)

	// ListByStore retrieves reviews of a store, newest first.
	ListByStore(ctx context.Context, storeID string, limit int) ([]*entity.Review, error)

	// SummarizeRatings computes the rating sum and count over every review of a store.
	SummarizeRatings(ctx context.Context, storeID string) (entity.RatingSummary, error)
}
