// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"boral/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered to another user.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateUsername is returned when the username is already taken by another user.
	ErrDuplicateUsername = errors.New("username already taken")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByIDs retrieves every user whose ID is in ids. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.User, error)

	// UpdateProfile overwrites username, email, full name and phone.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// UpdateAvatar replaces the avatar data URL.
	UpdateAvatar(ctx context.Context, id, avatar string) error

	// MarkStoreOwner sets is_store_owner on the user.
	MarkStoreOwner(ctx context.Context, id string) error
}
