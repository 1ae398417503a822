package handler

import (
	"net/http"
	"testing"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	mockUsecase "boral/internal/mocks/usecase"
	"boral/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewHandler_CreateReview(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(reviewUC *mockUsecase.MockReviewUsecase, author *entity.User)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: `{"rating":4,"comment":"good"}`,
			setup: func(reviewUC *mockUsecase.MockReviewUsecase, author *entity.User) {
				reviewUC.EXPECT().
					CreateReview(mock.Anything, author, "s1", &usecase.ReviewInput{Rating: 4, Comment: "good"}).
					Return(&entity.Review{ID: "r1", StoreID: "s1", UserID: author.ID, Rating: 4}, nil).
					Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "rating above five",
			body:       `{"rating":6}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "rating missing",
			body:       `{"comment":"meh"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "second review by the same user",
			body: `{"rating":2}`,
			setup: func(reviewUC *mockUsecase.MockReviewUsecase, author *entity.User) {
				reviewUC.EXPECT().CreateReview(mock.Anything, author, "s1", mock.Anything).
					Return(nil, domainerrors.ErrReviewAlreadyExists).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "REVIEW_ALREADY_EXISTS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviewUC := mockUsecase.NewMockReviewUsecase(t)
			h := NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC})
			author := testUser("alice")
			if tt.setup != nil {
				tt.setup(reviewUC, author)
			}

			c, rec := newContext(http.MethodPost, "/api/stores/s1/reviews", tt.body, author)
			require.NoError(t, h.CreateReview(withParam(c, "id", "s1")))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
			}
		})
	}
}
