package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "boral/internal/delivery/context"
	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	"boral/internal/domain/service"
	"boral/internal/usecase"
	"boral/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user with a unique email and username and signs them in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email), slog.String("username", input.Username))

	if len(input.Password) > service.MaxPasswordBytes {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("password must be at most 72 bytes")
	}

	if err := srv.ensureEmailAvailable(ctx, email, ""); err != nil {
		return nil, err
	}
	if err := srv.ensureUsernameAvailable(ctx, input.Username, ""); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        email,
		FullName:     input.FullName,
		Phone:        input.Phone,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, mapUserWriteError(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", user.ID))

	return srv.issue(ctx, user)
}

// Login verifies email and password. Unknown emails and wrong passwords fail identically.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.String("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	return srv.issue(ctx, user)
}

// Authenticate resolves a bearer token to the user it was issued for.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("missing token")
	}

	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Token validation failed", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized.WrapMessage("invalid or expired token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load authenticated user")
	}

	return user, nil
}

// UpdateProfile replaces the editable profile fields, re-checking email and username uniqueness.
func (srv *authService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	if email != user.Email {
		if err := srv.ensureEmailAvailable(ctx, email, userID); err != nil {
			return nil, err
		}
	}
	if input.Username != user.Username {
		if err := srv.ensureUsernameAvailable(ctx, input.Username, userID); err != nil {
			return nil, err
		}
	}

	user.Username = input.Username
	user.Email = email
	user.FullName = input.FullName
	user.Phone = input.Phone

	if err := srv.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, mapUserWriteError(err, "failed to update profile")
	}

	srv.log(ctx).Info("Profile updated", slog.String("userID", userID))

	return user, nil
}

// UploadAvatar stores file as a data URL on the user.
func (srv *authService) UploadAvatar(ctx context.Context, userID string, file *usecase.UploadedFile) (string, error) {
	avatar := util.DataURL(file.ContentType, file.Content)

	if err := srv.userRepo.UpdateAvatar(ctx, userID, avatar); err != nil {
		return "", mapUserWriteError(err, "failed to update avatar")
	}

	srv.log(ctx).Info("Avatar updated",
		slog.String("userID", userID),
		slog.String("size", util.FormatBytes(int64(len(file.Content)))),
	)

	return avatar, nil
}

func (srv *authService) issue(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.IssueToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.String("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	return &usecase.AuthOutput{
		AccessToken: token,
		TokenType:   usecase.TokenTypeBearer,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

func (srv *authService) findUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user " + userID + " not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ensureEmailAvailable fails unless email is unused or used by exceptUserID.
func (srv *authService) ensureEmailAvailable(ctx context.Context, email, exceptUserID string) error {
	existing, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check email availability")
	}

	if existing.ID != exceptUserID {
		srv.log(ctx).Warn("Email already registered", slog.String("email", email))

		return domainerrors.ErrEmailAlreadyRegistered.WrapMessage(email)
	}

	return nil
}

// ensureUsernameAvailable fails unless username is unused or used by exceptUserID.
func (srv *authService) ensureUsernameAvailable(ctx context.Context, username, exceptUserID string) error {
	existing, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check username availability")
	}

	if existing.ID != exceptUserID {
		srv.log(ctx).Warn("Username already taken", slog.String("username", username))

		return domainerrors.ErrUsernameTaken.WrapMessage(username)
	}

	return nil
}

// mapUserWriteError turns repository sentinels from user writes into application errors.
// The unique indexes catch registrations that race past the availability checks.
func mapUserWriteError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.ErrEmailAlreadyRegistered.WrapMessage(msg)
	case errors.Is(err, repository.ErrDuplicateUsername):
		return domainerrors.ErrUsernameTaken.WrapMessage(msg)
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound.WrapMessage(msg)
	default:
		return errors.Wrap(err, msg)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
