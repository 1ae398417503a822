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

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *mongo.Database) repository.DeviceRepository {
	return &deviceRepository{
		coll: db.Collection(collDevices),
		now:  time.Now,
	}
}

// CreateDevice persists a new device for a user.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	if _, err := repo.coll.InsertOne(ctx, fromDeviceDomain(device)); err != nil {
		if duplicateKeyIndex(err) == idxDeviceUser {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	err := repo.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}, options.FindOne().SetProjection(excludeMongoID)).Decode(&deviceM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByUser retrieves all devices for a specific user (including inactive).
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID string) ([]*entity.Device, error) {
	return repo.find(ctx, bson.D{{Key: "user_id", Value: userID}}, "failed to find devices by user")
}

// FindActiveDevicesByUser retrieves all active devices for a specific user.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID string) ([]*entity.Device, error) {
	filter := bson.D{{Key: "user_id", Value: userID}, {Key: "is_active", Value: true}}

	return repo.find(ctx, filter, "failed to find active devices by user")
}

// UpdateFCMToken updates the FCM token for a specific device and reactivates it.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID string, fcmToken string) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "fcm_token", Value: fcmToken},
		{Key: "is_active", Value: true},
		{Key: "updated_at", Value: model.FormatTime(repo.now())},
	}}}

	result, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "id", Value: deviceID}}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update FCM token")
	}

	if result.MatchedCount == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevice marks a device inactive.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id string) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "is_active", Value: false},
		{Key: "updated_at", Value: model.FormatTime(repo.now())},
	}}}

	result, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "id", Value: id}}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate device")
	}

	if result.MatchedCount == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateByTokens marks every device holding one of tokens inactive.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	filter := bson.D{
		{Key: "fcm_token", Value: bson.D{{Key: "$in", Value: tokens}}},
		{Key: "is_active", Value: true},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "is_active", Value: false},
		{Key: "updated_at", Value: model.FormatTime(repo.now())},
	}}}

	result, err := repo.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to deactivate devices by token")
	}

	return result.ModifiedCount, nil
}

func (repo *deviceRepository) find(ctx context.Context, filter bson.D, op string) ([]*entity.Device, error) {
	sort := bson.D{{Key: "created_at", Value: -1}}

	deviceModels, err := findAll[model.DeviceModel](ctx, repo.coll, filter, findOptions(0, sort), op)
	if err != nil {
		return nil, err
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a DeviceModel document to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  entity.Platform(data.Platform),
		IsActive:  data.IsActive,
		CreatedAt: model.ParseTimeOrZero(data.CreatedAt),
		UpdatedAt: model.ParseTimeOrZero(data.UpdatedAt),
	}
}

// fromDeviceDomain converts a domain Device entity to a DeviceModel document.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  string(data.Platform),
		IsActive:  data.IsActive,
		CreatedAt: model.FormatTime(data.CreatedAt),
		UpdatedAt: model.FormatTime(data.UpdatedAt),
	}
}
