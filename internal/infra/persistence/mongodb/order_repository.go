package mongodb

import (
	"context"
	"time"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	"boral/internal/errors"
	"boral/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	coll *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{
		coll: db.Collection(collOrders),
	}
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if _, err := repo.coll.InsertOne(ctx, fromOrderDomain(order)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var orderM model.OrderModel

	err := repo.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}, options.FindOne().SetProjection(excludeMongoID)).Decode(&orderM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser retrieves orders placed by userID, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Order, error) {
	return repo.listNewest(ctx, bson.D{{Key: "user_id", Value: userID}}, limit, "failed to list user orders")
}

// ListByStore retrieves orders placed at storeID, newest first.
func (repo *orderRepository) ListByStore(ctx context.Context, storeID string, limit int) ([]*entity.Order, error) {
	return repo.listNewest(ctx, bson.D{{Key: "store_id", Value: storeID}}, limit, "failed to list store orders")
}

// UpdateStatus sets the status and updated_at of an order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, updatedAt time.Time) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status.String()},
		{Key: "updated_at", Value: model.FormatTime(updatedAt)},
	}}}

	result, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "id", Value: id}}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
	}

	if result.MatchedCount == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// StatsByStore counts the orders of a store and sums their totals.
func (repo *orderRepository) StatsByStore(ctx context.Context, storeID string) (entity.OrderStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "store_id", Value: storeID}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
	}

	rows, err := aggregateAll[model.OrderStatsRow](ctx, repo.coll, pipeline, "failed to compute order stats")
	if err != nil {
		return entity.OrderStats{}, err
	}

	if len(rows) == 0 {
		return entity.OrderStats{}, nil
	}

	return entity.OrderStats{Count: rows[0].Count, Revenue: rows[0].Revenue}, nil
}

func (repo *orderRepository) listNewest(ctx context.Context, filter bson.D, limit int, op string) ([]*entity.Order, error) {
	sort := bson.D{{Key: "created_at", Value: -1}}

	orderModels, err := findAll[model.OrderModel](ctx, repo.coll, filter, findOptions(limit, sort), op)
	if err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Name:      item.Name,
		})
	}

	return &entity.Order{
		ID:        data.ID,
		StoreID:   data.StoreID,
		UserID:    data.UserID,
		Items:     items,
		Total:     data.Total,
		Status:    entity.OrderStatus(data.Status),
		Notes:     data.Notes,
		CreatedAt: model.ParseTimeOrZero(data.CreatedAt),
		UpdatedAt: model.ParseTimeOrZero(data.UpdatedAt),
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ProductID: item.ProductID,
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Name:      item.Name,
		})
	}

	return &model.OrderModel{
		ID:        data.ID,
		StoreID:   data.StoreID,
		UserID:    data.UserID,
		Items:     items,
		Total:     data.Total,
		Status:    data.Status.String(),
		Notes:     data.Notes,
		CreatedAt: model.FormatTime(data.CreatedAt),
		UpdatedAt: model.FormatTime(data.UpdatedAt),
	}
}
