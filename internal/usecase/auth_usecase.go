// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"boral/internal/domain/entity"
)

// TokenTypeBearer is the token_type reported alongside issued access tokens.
const TokenTypeBearer = "bearer"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Phone    *string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput replaces the editable profile fields of a user.
type UpdateProfileInput struct {
	Username string
	Email    string
	FullName string
	Phone    *string
}

// --- Output DTOs ---

// AuthOutput returns the issued access token and the authenticated user.
type AuthOutput struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        *entity.User `json:"user"`
}

// AuthUsecase covers registration, login, bearer authentication and self-service profile changes.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Authenticate resolves a bearer token to the user it was issued for.
	// It fails with Unauthorized when the token is invalid or the user no longer exists.
	Authenticate(ctx context.Context, token string) (*entity.User, error)

	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*entity.User, error)

	// UploadAvatar stores file as the user's avatar and returns the resulting data URL.
	UploadAvatar(ctx context.Context, userID string, file *UploadedFile) (string, error)
}
