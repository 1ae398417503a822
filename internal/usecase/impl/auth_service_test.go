package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	"boral/internal/domain/service"
	mockRepo "boral/internal/mocks/repository"
	mockService "boral/internal/mocks/service"
	"boral/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func newRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username: "layla",
		Email:    "Layla@Example.com ",
		FullName: "Layla Hassan",
		Password: "s3cret-pass",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(7 * 24 * time.Hour)

	fx.userRepo.EXPECT().FindByEmail(ctx, "layla@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByUsername(ctx, "layla").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "layla@example.com" && u.PasswordHash == "hashed" && u.ID != "" && !u.IsStoreOwner
		})).
		Return(nil)
	fx.tokenService.EXPECT().IssueToken(mock.AnythingOfType("string")).Return("token-abc", expiresAt, nil)

	out, err := fx.service.Register(ctx, newRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, "token-abc", out.AccessToken)
	assert.Equal(t, usecase.TokenTypeBearer, out.TokenType)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Equal(t, "Layla Hassan", out.User.FullName)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "layla@example.com").
		Return(&entity.User{ID: "existing"}, nil)

	_, err := fx.service.Register(ctx, newRegisterInput())

	requireAppError(t, err, domainerrors.ErrEmailAlreadyRegistered)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "layla@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByUsername(ctx, "layla").Return(&entity.User{ID: "existing"}, nil)

	_, err := fx.service.Register(ctx, newRegisterInput())

	requireAppError(t, err, domainerrors.ErrUsernameTaken)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAuthService_Register_UniqueIndexRace(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "layla@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByUsername(ctx, "layla").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, newRegisterInput())

	requireAppError(t, err, domainerrors.ErrEmailAlreadyRegistered)
	fx.tokenService.AssertNotCalled(t, "IssueToken", mock.Anything)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "layla@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByUsername(ctx, "layla").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("", errors.New("boom"))

	_, err := fx.service.Register(ctx, newRegisterInput())

	requireAppError(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	for name, password := range map[string]string{
		"73 ascii bytes":         strings.Repeat("p", 73),
		"40 runes over 72 bytes": strings.Repeat("ك", 40),
	} {
		t.Run(name, func(t *testing.T) {
			fx := createTestAuthService(t)
			input := newRegisterInput()
			input.Password = password

			_, err := fx.service.Register(context.Background(), input)

			requireAppError(t, err, domainerrors.ErrValidationFailed)
			fx.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
			fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
		})
	}
}

func TestAuthService_Register_PasswordAtLimit(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := newRegisterInput()
	input.Password = strings.Repeat("p", service.MaxPasswordBytes)

	fx.userRepo.EXPECT().FindByEmail(ctx, "layla@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByUsername(ctx, "layla").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokenService.EXPECT().IssueToken(mock.AnythingOfType("string")).Return("token", time.Now(), nil)

	_, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	user := &entity.User{ID: "u1", Email: "layla@example.com", PasswordHash: "hashed"}

	tests := []struct {
		name    string
		setup   func(fx authServiceFixtures)
		wantErr *domainerrors.BaseError
	}{
		{
			name: "success",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "layla@example.com").Return(user, nil)
				fx.hasher.EXPECT().Check("pw", "hashed").Return(true)
				fx.tokenService.EXPECT().IssueToken("u1").Return("tok", time.Now(), nil)
			},
		},
		{
			name: "unknown email",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "layla@example.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "layla@example.com").Return(user, nil)
				fx.hasher.EXPECT().Check("pw", "hashed").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			out, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "LAYLA@example.com", Password: "pw"})

			if tt.wantErr != nil {
				requireAppError(t, err, tt.wantErr)
				assert.Equal(t, 401, tt.wantErr.HTTPCode())

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "tok", out.AccessToken)
			assert.Equal(t, user, out.User)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	claims := &service.Claims{
		Type:             service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	}

	t.Run("missing token", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Authenticate(context.Background(), "")

		requireAppError(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))

		_, err := fx.service.Authenticate(context.Background(), "bad")

		requireAppError(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("user no longer exists", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().ValidateToken("good").Return(claims, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, "u1").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Authenticate(context.Background(), "good")

		requireAppError(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := &entity.User{ID: "u1"}
		fx.tokenService.EXPECT().ValidateToken("good").Return(claims, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, "u1").Return(user, nil)

		got, err := fx.service.Authenticate(context.Background(), "good")

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})
}

func TestAuthService_UpdateProfile_EmailTakenByAnotherUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	current := &entity.User{ID: "u1", Username: "layla", Email: "layla@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(current, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "omar@example.com").Return(&entity.User{ID: "u2"}, nil)

	_, err := fx.service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{
		Username: "layla",
		Email:    "omar@example.com",
		FullName: "Layla",
	})

	requireAppError(t, err, domainerrors.ErrEmailAlreadyRegistered)
	fx.userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
}

func TestAuthService_UpdateProfile_UnchangedIdentifiersSkipChecks(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	current := &entity.User{ID: "u1", Username: "layla", Email: "layla@example.com", FullName: "Old"}

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(current, nil)
	fx.userRepo.EXPECT().
		UpdateProfile(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.FullName == "New Name" && u.Phone != nil && *u.Phone == "+218"
		})).
		Return(nil)

	user, err := fx.service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{
		Username: "layla",
		Email:    "layla@example.com",
		FullName: "New Name",
		Phone:    ptr("+218"),
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.FullName)
}

func TestAuthService_UpdateProfile_UserMissing(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.UpdateProfile(ctx, "ghost", &usecase.UpdateProfileInput{})

	requireAppError(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_UploadAvatar(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().UpdateAvatar(ctx, "u1", "data:image/png;base64,YWJj").Return(nil)

	avatar, err := fx.service.UploadAvatar(ctx, "u1", &usecase.UploadedFile{ContentType: "image/png", Content: []byte("abc")})

	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,YWJj", avatar)
}
