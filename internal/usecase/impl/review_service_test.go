package impl

import (
	"context"
	"testing"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	mockRepo "boral/internal/mocks/repository"
	"boral/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	storeRepo  *mockRepo.MockStoreRepository
	reviewRepo *mockRepo.MockReviewRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)

	svc := NewReviewService(ReviewServiceParams{
		StoreRepo:  storeRepo,
		ReviewRepo: reviewRepo,
		Logger:     newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:    svc,
		storeRepo:  storeRepo,
		reviewRepo: reviewRepo,
	}
}

var reviewAuthor = &entity.User{ID: "u1", FullName: "Layla Hassan"}

func TestReviewService_CreateReview_RefreshesAggregate(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1"}, nil)
	fx.reviewRepo.EXPECT().ExistsForUser(ctx, "s1", "u1").Return(false, nil)
	fx.reviewRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.Review) bool {
			return r.UserName == "Layla Hassan" && r.Rating == 4 && r.StoreID == "s1"
		})).
		Return(nil)
	// Existing ratings 5 and 4 plus the new 4.
	fx.reviewRepo.EXPECT().SummarizeRatings(ctx, "s1").Return(entity.RatingSummary{Sum: 13, Count: 3}, nil)
	fx.storeRepo.EXPECT().UpdateRating(ctx, "s1", 4.3, 3).Return(nil)

	review, err := fx.service.CreateReview(ctx, reviewAuthor, "s1", &usecase.ReviewInput{Rating: 4, Comment: "Lovely"})

	require.NoError(t, err)
	assert.Equal(t, "u1", review.UserID)
	assert.NotEmpty(t, review.ID)
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	t.Run("detected up front", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1"}, nil)
		fx.reviewRepo.EXPECT().ExistsForUser(ctx, "s1", "u1").Return(true, nil)

		_, err := fx.service.CreateReview(ctx, reviewAuthor, "s1", &usecase.ReviewInput{Rating: 5})

		requireAppError(t, err, domainerrors.ErrReviewAlreadyExists)
		fx.reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		fx.storeRepo.AssertNotCalled(t, "UpdateRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lost race on unique index", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1"}, nil)
		fx.reviewRepo.EXPECT().ExistsForUser(ctx, "s1", "u1").Return(false, nil)
		fx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(repository.ErrDuplicateReview)

		_, err := fx.service.CreateReview(ctx, reviewAuthor, "s1", &usecase.ReviewInput{Rating: 5})

		requireAppError(t, err, domainerrors.ErrReviewAlreadyExists)
		fx.reviewRepo.AssertNotCalled(t, "SummarizeRatings", mock.Anything, mock.Anything)
	})
}

func TestReviewService_CreateReview_UnknownStore(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrStoreNotFound)

	_, err := fx.service.CreateReview(ctx, reviewAuthor, "ghost", &usecase.ReviewInput{Rating: 3})

	requireAppError(t, err, domainerrors.ErrStoreNotFound)
}

func TestReviewService_CreateReview_AggregateFailure(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1"}, nil)
	fx.reviewRepo.EXPECT().ExistsForUser(ctx, "s1", "u1").Return(false, nil)
	fx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	fx.reviewRepo.EXPECT().SummarizeRatings(ctx, "s1").Return(entity.RatingSummary{}, errors.New("cursor killed"))

	_, err := fx.service.CreateReview(ctx, reviewAuthor, "s1", &usecase.ReviewInput{Rating: 3})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to summarize store ratings")
}
