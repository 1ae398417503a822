package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "boral/internal/delivery/context"
	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	"boral/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	storeGuard

	reviewRepo repository.ReviewRepository
	aggregate  ratingAggregate
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	StoreRepo  repository.StoreRepository
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		storeGuard: storeGuard{storeRepo: params.StoreRepo},
		reviewRepo: params.ReviewRepo,
		aggregate:  ratingAggregate{reviewRepo: params.ReviewRepo, storeRepo: params.StoreRepo},
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStoreReviews lists the reviews of a store, newest first.
func (srv *reviewService) ListStoreReviews(ctx context.Context, storeID string) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByStore(ctx, storeID, generalListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store reviews")
	}

	return reviews, nil
}

// CreateReview stores the author's only review of the store, then refreshes the store's rating aggregate.
func (srv *reviewService) CreateReview(ctx context.Context, author *entity.User, storeID string, input *usecase.ReviewInput) (*entity.Review, error) {
	if _, err := srv.findStore(ctx, storeID); err != nil {
		return nil, err
	}

	exists, err := srv.reviewRepo.ExistsForUser(ctx, storeID, author.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing review")
	}
	if exists {
		return nil, domainerrors.ErrReviewAlreadyExists.WrapMessage("store " + storeID)
	}

	review := &entity.Review{
		ID:        uuid.NewString(),
		StoreID:   storeID,
		UserID:    author.ID,
		UserName:  author.FullName,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, domainerrors.ErrReviewAlreadyExists.WrapMessage("store " + storeID + " reviewed concurrently")
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	summary, err := srv.aggregate.refresh(ctx, storeID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Review created",
		slog.String("storeID", storeID),
		slog.Float64("rating", summary.Average()),
		slog.Int("reviews", summary.Count),
	)

	return review, nil
}
