package mongodb

import (
	"context"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	"boral/internal/errors"
	"boral/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	coll *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{
		coll: db.Collection(collProducts),
	}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if _, err := repo.coll.InsertOne(ctx, fromProductDomain(product)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var productM model.ProductModel

	err := repo.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}, options.FindOne().SetProjection(excludeMongoID)).Decode(&productM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// ListByStore retrieves products of a store.
func (repo *productRepository) ListByStore(ctx context.Context, storeID string, limit int) ([]*entity.Product, error) {
	return repo.find(ctx, bson.D{{Key: "store_id", Value: storeID}}, findOptions(limit, nil), "failed to list products by store")
}

// CountByStore counts the products of a store.
func (repo *productRepository) CountByStore(ctx context.Context, storeID string) (int64, error) {
	count, err := repo.coll.CountDocuments(ctx, bson.D{{Key: "store_id", Value: storeID}})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count products")
	}

	return count, nil
}

// Search matches query against name, description and category.
func (repo *productRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	filter := anyFieldContains(query, "name", "description", "category")

	return repo.find(ctx, filter, findOptions(limit, nil), "failed to search products")
}

// ListMostLiked retrieves products ordered by likes descending, optionally scoped to a store.
func (repo *productRepository) ListMostLiked(ctx context.Context, storeID string, limit int) ([]*entity.Product, error) {
	filter := bson.D{}
	if storeID != "" {
		filter = append(filter, bson.E{Key: "store_id", Value: storeID})
	}

	sort := bson.D{{Key: "likes", Value: -1}, {Key: "created_at", Value: 1}}

	return repo.find(ctx, filter, findOptions(limit, sort), "failed to list most liked products")
}

// Update overwrites the owner-editable fields and updated_at.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: product.Name},
		{Key: "description", Value: product.Description},
		{Key: "price", Value: product.Price},
		{Key: "images", Value: nonNilStrings(product.Images)},
		{Key: "stock", Value: product.Stock},
		{Key: "category", Value: product.Category},
		{Key: "updated_at", Value: model.FormatTime(product.UpdatedAt)},
	}}}

	result, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "id", Value: product.ID}}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	if result.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AddLike adds userID to the liker set and recomputes likes in the same atomic document update.
// The filter only matches while userID is absent, so a concurrent like cannot double count.
func (repo *productRepository) AddLike(ctx context.Context, productID, userID string) (*entity.Product, error) {
	filter := bson.D{
		{Key: "id", Value: productID},
		{Key: "liked_by", Value: bson.D{{Key: "$ne", Value: userID}}},
	}
	likers := bson.D{{Key: "$setUnion", Value: bson.A{
		bson.D{{Key: "$ifNull", Value: bson.A{"$liked_by", bson.A{}}}},
		bson.A{userID},
	}}}

	return repo.applyLikeUpdate(ctx, filter, likers, "failed to like product")
}

// RemoveLike removes userID from the liker set and recomputes likes in the same atomic document update.
// The filter only matches while userID is present, so likes can never drop below zero.
func (repo *productRepository) RemoveLike(ctx context.Context, productID, userID string) (*entity.Product, error) {
	filter := bson.D{
		{Key: "id", Value: productID},
		{Key: "liked_by", Value: userID},
	}
	likers := bson.D{{Key: "$setDifference", Value: bson.A{
		bson.D{{Key: "$ifNull", Value: bson.A{"$liked_by", bson.A{}}}},
		bson.A{userID},
	}}}

	return repo.applyLikeUpdate(ctx, filter, likers, "failed to unlike product")
}

func (repo *productRepository) applyLikeUpdate(ctx context.Context, filter, likers bson.D, op string) (*entity.Product, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "liked_by", Value: likers}}}},
		{{Key: "$set", Value: bson.D{{Key: "likes", Value: bson.D{{Key: "$size", Value: "$liked_by"}}}}}},
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(excludeMongoID)

	var productM model.ProductModel
	if err := repo.coll.FindOneAndUpdate(ctx, filter, pipeline, opts).Decode(&productM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrLikeConflict
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return toProductDomain(&productM), nil
}

// Delete removes a product.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	result, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	if result.DeletedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteByStore removes every product of a store.
func (repo *productRepository) DeleteByStore(ctx context.Context, storeID string) (int64, error) {
	result, err := repo.coll.DeleteMany(ctx, bson.D{{Key: "store_id", Value: storeID}})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete store products")
	}

	return result.DeletedCount, nil
}

func (repo *productRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions, op string) ([]*entity.Product, error) {
	productModels, err := findAll[model.ProductModel](ctx, repo.coll, filter, opts, op)
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

// --- Mapper Functions ---

// toProductDomain converts a ProductModel document to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Images:      nonNilStrings(data.Images),
		Stock:       data.Stock,
		Category:    data.Category,
		StoreID:     data.StoreID,
		Likes:       data.Likes,
		LikedBy:     nonNilStrings(data.LikedBy),
		CreatedAt:   model.ParseTimeOrZero(data.CreatedAt),
		UpdatedAt:   model.ParseTimeOrZero(data.UpdatedAt),
	}
}

// fromProductDomain converts a domain Product entity to a ProductModel document.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Images:      nonNilStrings(data.Images),
		Stock:       data.Stock,
		Category:    data.Category,
		StoreID:     data.StoreID,
		Likes:       data.Likes,
		LikedBy:     nonNilStrings(data.LikedBy),
		CreatedAt:   model.FormatTime(data.CreatedAt),
		UpdatedAt:   model.FormatTime(data.UpdatedAt),
	}
}
