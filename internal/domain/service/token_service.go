package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeAccess is the only token type issued by the service.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the JWT tokens. The subject carries the user ID.
type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// UserID returns the user the token was issued for.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a signed access token for userID and reports when it expires.
	IssueToken(userID string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the signature, algorithm, expiry and subject of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
