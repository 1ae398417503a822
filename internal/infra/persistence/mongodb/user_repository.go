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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(collUsers),
	}
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := repo.coll.InsertOne(ctx, fromUserDomain(user)); err != nil {
		if dupErr := userDuplicateError(err); dupErr != nil {
			return dupErr
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// FindByID retrieves a user by its unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: "id", Value: id}})
}

// FindByEmail retrieves a user by email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

// FindByUsername retrieves a user by username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

// FindByIDs retrieves every user whose ID is in ids.
func (repo *userRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	filter := bson.D{{Key: "id", Value: bson.D{{Key: "$in", Value: ids}}}}
	userModels, err := findAll[model.UserModel](ctx, repo.coll, filter, findOptions(len(ids), nil), "failed to find users by IDs")
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// UpdateProfile overwrites username, email, full name and phone.
func (repo *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "username", Value: user.Username},
		{Key: "email", Value: user.Email},
		{Key: "full_name", Value: user.FullName},
		{Key: "phone", Value: user.Phone},
	}}}

	result, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "id", Value: user.ID}}, update)
	if err != nil {
		if dupErr := userDuplicateError(err); dupErr != nil {
			return dupErr
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user profile")
	}

	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateAvatar replaces the avatar data URL.
func (repo *userRepository) UpdateAvatar(ctx context.Context, id, avatar string) error {
	return repo.setFields(ctx, id, bson.D{{Key: "avatar", Value: avatar}}, "failed to update avatar")
}

// MarkStoreOwner sets is_store_owner on the user.
func (repo *userRepository) MarkStoreOwner(ctx context.Context, id string) error {
	return repo.setFields(ctx, id, bson.D{{Key: "is_store_owner", Value: true}}, "failed to mark store owner")
}

func (repo *userRepository) setFields(ctx context.Context, id string, fields bson.D, op string) error {
	result, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "id", Value: id}}, bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, op)
	}

	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	var userM model.UserModel

	err := repo.coll.FindOne(ctx, filter, options.FindOne().SetProjection(excludeMongoID)).Decode(&userM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// userDuplicateError maps a unique index violation to the matching repository error.
func userDuplicateError(err error) error {
	switch duplicateKeyIndex(err) {
	case idxUsersEmail:
		return repository.ErrDuplicateEmail
	case idxUsersUsername:
		return repository.ErrDuplicateUsername
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a UserModel document to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		FullName:     data.FullName,
		Phone:        data.Phone,
		Avatar:       data.Avatar,
		IsStoreOwner: data.IsStoreOwner,
		PasswordHash: data.PasswordHash,
		CreatedAt:    model.ParseTimeOrZero(data.CreatedAt),
	}
}

// fromUserDomain converts a domain User entity to a UserModel document.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		FullName:     data.FullName,
		Phone:        data.Phone,
		Avatar:       data.Avatar,
		IsStoreOwner: data.IsStoreOwner,
		PasswordHash: data.PasswordHash,
		CreatedAt:    model.FormatTime(data.CreatedAt),
	}
}
