package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()
	svc, err := NewJWTService(&config.Config{
		Auth: config.AuthConfig{Secret: "test-secret", AccessTokenTTL: ttl},
	})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)
	userID := uuid.New()

	token, err := svc.Generate(userID, []string{"admin", "user"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"admin", "user"}, claims.Roles)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, -time.Minute)

	token, err := svc.Generate(uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer := newTestJWTService(t, time.Minute)
	verifier, err := NewJWTService(&config.Config{
		Auth: config.AuthConfig{Secret: "other-secret"},
	})
	require.NoError(t, err)

	token, err := issuer.Generate(uuid.New(), nil)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)

	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	svc := newTestJWTService(t, 45*time.Minute)
	assert.Equal(t, 45*time.Minute, svc.AccessTokenDuration())

	// Zero TTL falls back to the default.
	defaulted := newTestJWTService(t, 0)
	assert.Equal(t, 15*time.Minute, defaulted.AccessTokenDuration())
}
