package mongodb

import (
	"context"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	"boral/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &reviewRepository{
		coll: db.Collection(collReviews),
	}
}

// Create persists a new review. The (store_id, user_id) unique index rejects a second review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if _, err := repo.coll.InsertOne(ctx, fromReviewDomain(review)); err != nil {
		if duplicateKeyIndex(err) == idxReviewStoreUser {
			return repository.ErrDuplicateReview
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	return nil
}

// ExistsForUser reports whether userID has reviewed storeID.
func (repo *reviewRepository) ExistsForUser(ctx context.Context, storeID, userID string) (bool, error) {
	filter := bson.D{{Key: "store_id", Value: storeID}, {Key: "user_id", Value: userID}}

	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check existing review")
	}

	return count > 0, nil
}

// ListByStore retrieves reviews of a store, newest first.
func (repo *reviewRepository) ListByStore(ctx context.Context, storeID string, limit int) ([]*entity.Review, error) {
	filter := bson.D{{Key: "store_id", Value: storeID}}
	sort := bson.D{{Key: "created_at", Value: -1}}

	reviewModels, err := findAll[model.ReviewModel](ctx, repo.coll, filter, findOptions(limit, sort), "failed to list reviews")
	if err != nil {
		return nil, err
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// SummarizeRatings computes the rating sum and count over every review of a store.
func (repo *reviewRepository) SummarizeRatings(ctx context.Context, storeID string) (entity.RatingSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "store_id", Value: storeID}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "sum", Value: bson.D{{Key: "$sum", Value: "$rating"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	rows, err := aggregateAll[model.RatingSummaryRow](ctx, repo.coll, pipeline, "failed to summarize ratings")
	if err != nil {
		return entity.RatingSummary{}, err
	}

	if len(rows) == 0 {
		return entity.RatingSummary{}, nil
	}

	return entity.RatingSummary{Sum: rows[0].Sum, Count: rows[0].Count}, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		StoreID:   data.StoreID,
		UserID:    data.UserID,
		UserName:  data.UserName,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: model.ParseTimeOrZero(data.CreatedAt),
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		StoreID:   data.StoreID,
		UserID:    data.UserID,
		UserName:  data.UserName,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: model.FormatTime(data.CreatedAt),
	}
}
