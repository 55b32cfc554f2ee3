package auth

import (
	"testing"
	"time"

	"profilesync/config"
	domainerrors "profilesync/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.SecretKey.AccessTTL = ttl

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, expiresAt, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	got, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(testConfig("", time.Hour))

	assert.Error(t, err)
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	svc, err := NewJWTService(testConfig("secret-a", time.Hour))
	require.NoError(t, err)
	other, err := NewJWTService(testConfig("secret-b", time.Hour))
	require.NoError(t, err)

	foreign, _, err := other.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	wrongType, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		Type: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret-a"))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": foreign,
		"wrong type":   wrongType,
		"empty":        "",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(token)

			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		})
	}
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(testConfig("secret", time.Minute))
	require.NoError(t, err)

	issued := time.Now().Add(-time.Hour)
	svc.(*jwtService).now = func() time.Time { return issued }
	token, _, err := svc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	svc.(*jwtService).now = time.Now
	_, err = svc.ValidateAccessToken(token)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
