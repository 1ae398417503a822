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

// serviceRepository implements the repository.ServiceRepository interface.
type serviceRepository struct {
	coll *mongo.Collection
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *mongo.Database) repository.ServiceRepository {
	return &serviceRepository{
		coll: db.Collection(collServices),
	}
}

// Create persists a new service.
func (repo *serviceRepository) Create(ctx context.Context, svc *entity.Service) error {
	if _, err := repo.coll.InsertOne(ctx, fromServiceDomain(svc)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	return nil
}

// FindByID retrieves a service by its unique ID.
func (repo *serviceRepository) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	var serviceM model.ServiceModel

	err := repo.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}, options.FindOne().SetProjection(excludeMongoID)).Decode(&serviceM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find service")
	}

	return toServiceDomain(&serviceM), nil
}

// List retrieves services matching filter.
func (repo *serviceRepository) List(ctx context.Context, filter repository.ServiceFilter) ([]*entity.Service, error) {
	query := bson.D{}
	if filter.StoreID != "" {
		query = append(query, bson.E{Key: "store_id", Value: filter.StoreID})
	}
	if filter.Category != "" {
		query = append(query, bson.E{Key: "category", Value: filter.Category})
	}

	return repo.find(ctx, query, findOptions(filter.Limit, nil), "failed to list services")
}

// Search matches query against name, description and category.
func (repo *serviceRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Service, error) {
	filter := anyFieldContains(query, "name", "description", "category")

	return repo.find(ctx, filter, findOptions(limit, nil), "failed to search services")
}

// Update overwrites the owner-editable fields and updated_at.
func (repo *serviceRepository) Update(ctx context.Context, svc *entity.Service) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: svc.Name},
		{Key: "description", Value: svc.Description},
		{Key: "price", Value: svc.Price},
		{Key: "duration", Value: svc.Duration},
		{Key: "category", Value: svc.Category},
		{Key: "image", Value: svc.Image},
		{Key: "updated_at", Value: model.FormatTime(svc.UpdatedAt)},
	}}}

	result, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "id", Value: svc.ID}}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update service")
	}

	if result.MatchedCount == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// Delete removes a service.
func (repo *serviceRepository) Delete(ctx context.Context, id string) error {
	result, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete service")
	}

	if result.DeletedCount == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// DeleteByStore removes every service of a store.
func (repo *serviceRepository) DeleteByStore(ctx context.Context, storeID string) (int64, error) {
	result, err := repo.coll.DeleteMany(ctx, bson.D{{Key: "store_id", Value: storeID}})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete store services")
	}

	return result.DeletedCount, nil
}

func (repo *serviceRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions, op string) ([]*entity.Service, error) {
	serviceModels, err := findAll[model.ServiceModel](ctx, repo.coll, filter, opts, op)
	if err != nil {
		return nil, err
	}

	services := make([]*entity.Service, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

// --- Mapper Functions ---

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	return &entity.Service{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Duration:    data.Duration,
		Category:    data.Category,
		Image:       data.Image,
		StoreID:     data.StoreID,
		CreatedAt:   model.ParseTimeOrZero(data.CreatedAt),
		UpdatedAt:   model.ParseTimeOrZero(data.UpdatedAt),
	}
}

func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Duration:    data.Duration,
		Category:    data.Category,
		Image:       data.Image,
		StoreID:     data.StoreID,
		CreatedAt:   model.FormatTime(data.CreatedAt),
		UpdatedAt:   model.FormatTime(data.UpdatedAt),
	}
}
