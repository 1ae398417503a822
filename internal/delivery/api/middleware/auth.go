package middleware

import (
	"log/slog"
	"strings"

	"boral/internal/delivery/api/response"
	deliverycontext "boral/internal/delivery/context"
	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUser is the echo.Context key holding the authenticated *entity.User.
	ContextKeyUser = "user"

	bearerPrefix = "Bearer "
)

// AuthMiddleware resolves bearer tokens to users.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate requires a valid "Authorization: Bearer <token>" header and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized.WrapMessage("missing bearer token"))
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(ContextKeyUser, user)
		deliverycontext.EnrichLogger(c, slog.String("user_id", user.ID))

		return next(c)
	}
}

// GetUser returns the authenticated caller.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*entity.User)

	return user, ok && user != nil
}

// GetUserID returns the authenticated caller's ID.
func GetUserID(c echo.Context) (string, bool) {
	user, ok := GetUser(c)
	if !ok {
		return "", false
	}

	return user.ID, true
}
