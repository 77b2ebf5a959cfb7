package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims is what a validated access token asserts about the caller.
type TokenClaims struct {
	UserID uuid.UUID
	Roles  []string
}

// TokenService issues and validates the access tokens used to authenticate
// requests.
type TokenService interface {
	Generate(userID uuid.UUID, roles []string) (string, error)
	Validate(token string) (*TokenClaims, error)
	AccessTokenDuration() time.Duration
}
