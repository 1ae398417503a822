package mongodb

import (
	"context"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	"boral/internal/errors"
	"boral/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	coll *mongo.Collection
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *mongo.Database) repository.StoreRepository {
	return &storeRepository{
		coll: db.Collection(collStores),
	}
}

// Create persists a new store.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	if _, err := repo.coll.InsertOne(ctx, fromStoreDomain(store)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	return nil
}

// FindByID retrieves a store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id string) (*entity.Store, error) {
	var storeM model.StoreModel

	err := repo.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}, options.FindOne().SetProjection(excludeMongoID)).Decode(&storeM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find store")
	}

	return toStoreDomain(&storeM), nil
}

// List retrieves stores matching filter.
func (repo *storeRepository) List(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	query := bson.D{}
	if filter.Category != "" {
		query = append(query, bson.E{Key: "category", Value: filter.Category})
	}
	if filter.Search != "" {
		query = append(query, anyFieldContains(filter.Search, "name", "description")...)
	}

	return repo.find(ctx, query, findOptions(filter.Limit, nil), "failed to list stores")
}

// ListByOwner retrieves stores owned by ownerID.
func (repo *storeRepository) ListByOwner(ctx context.Context, ownerID string, limit int) ([]*entity.Store, error) {
	return repo.find(ctx, bson.D{{Key: "owner_id", Value: ownerID}}, findOptions(limit, nil), "failed to list stores by owner")
}

// ListInBound retrieves stores whose coordinates fall inside bound.
func (repo *storeRepository) ListInBound(ctx context.Context, bound orb.Bound, limit int) ([]*entity.Store, error) {
	query := bson.D{
		{Key: "latitude", Value: bson.D{{Key: "$gte", Value: bound.Min.Lat()}, {Key: "$lte", Value: bound.Max.Lat()}}},
		{Key: "longitude", Value: bson.D{{Key: "$gte", Value: bound.Min.Lon()}, {Key: "$lte", Value: bound.Max.Lon()}}},
	}

	return repo.find(ctx, query, findOptions(limit, nil), "failed to list stores in bound")
}

// Search matches query against name, description, category and address.
func (repo *storeRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Store, error) {
	filter := anyFieldContains(query, "name", "description", "category", "address")

	return repo.find(ctx, filter, findOptions(limit, nil), "failed to search stores")
}

// ListTopRated retrieves stores ordered by rating descending.
func (repo *storeRepository) ListTopRated(ctx context.Context, limit int) ([]*entity.Store, error) {
	sort := bson.D{{Key: "rating", Value: -1}, {Key: "reviews_count", Value: -1}}

	return repo.find(ctx, bson.D{}, findOptions(limit, sort), "failed to list top rated stores")
}

// Update overwrites the owner-editable fields and updated_at.
func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: store.Name},
		{Key: "description", Value: store.Description},
		{Key: "category", Value: store.Category},
		{Key: "address", Value: store.Address},
		{Key: "latitude", Value: store.Latitude},
		{Key: "longitude", Value: store.Longitude},
		{Key: "phone", Value: store.Phone},
		{Key: "email", Value: store.Email},
		{Key: "logo", Value: store.Logo},
		{Key: "cover_image", Value: store.CoverImage},
		{Key: "updated_at", Value: model.FormatTime(store.UpdatedAt)},
	}}}

	return repo.updateOne(ctx, store.ID, update, "failed to update store")
}

// UpdateRating writes the derived rating fields.
func (repo *storeRepository) UpdateRating(ctx context.Context, id string, rating float64, reviewsCount int) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "rating", Value: rating},
		{Key: "reviews_count", Value: reviewsCount},
	}}}

	return repo.updateOne(ctx, id, update, "failed to update store rating")
}

// Delete removes a store.
func (repo *storeRepository) Delete(ctx context.Context, id string) error {
	result, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete store")
	}

	if result.DeletedCount == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

func (repo *storeRepository) updateOne(ctx context.Context, id string, update bson.D, op string) error {
	result, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "id", Value: id}}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, op)
	}

	if result.MatchedCount == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

func (repo *storeRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions, op string) ([]*entity.Store, error) {
	storeModels, err := findAll[model.StoreModel](ctx, repo.coll, filter, opts, op)
	if err != nil {
		return nil, err
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// --- Mapper Functions ---

// toStoreDomain converts a StoreModel document to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Category:     data.Category,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Phone:        data.Phone,
		Email:        data.Email,
		Logo:         data.Logo,
		CoverImage:   data.CoverImage,
		OwnerID:      data.OwnerID,
		Rating:       data.Rating,
		ReviewsCount: data.ReviewsCount,
		CreatedAt:    model.ParseTimeOrZero(data.CreatedAt),
		UpdatedAt:    model.ParseTimeOrZero(data.UpdatedAt),
	}
}

// fromStoreDomain converts a domain Store entity to a StoreModel document.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Category:     data.Category,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Phone:        data.Phone,
		Email:        data.Email,
		Logo:         data.Logo,
		CoverImage:   data.CoverImage,
		OwnerID:      data.OwnerID,
		Rating:       data.Rating,
		ReviewsCount: data.ReviewsCount,
		CreatedAt:    model.FormatTime(data.CreatedAt),
		UpdatedAt:    model.FormatTime(data.UpdatedAt),
	}
}
