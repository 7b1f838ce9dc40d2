package auth

import (
	"testing"
	"time"

	"vinyl/config"
	"vinyl/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestJWTConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Minute))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()
	roles := []string{entity.RoleUser.String(), entity.RoleAdmin.String()}

	token, err := jwtService.GenerateAccessToken(userID, "alice", roles)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, roles, claims.Roles)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Minute))
	assert.NoError(t, err)

	_, err = jwtService.ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = jwtService.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(-time.Minute))
	assert.NoError(t, err)

	token, err := jwtService.GenerateAccessToken(uuid.New(), "bob", []string{entity.RoleUser.String()})
	assert.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig(time.Minute))
	assert.NoError(t, err)

	otherCfg := newTestJWTConfig(time.Minute)
	otherCfg.SecretKey.Access = "a_completely_different_secret_key"
	verifier, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New(), "carol", nil)
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Minute))
	assert.NoError(t, err)

	first := jwtService.HashToken("some-token")
	second := jwtService.HashToken("some-token")
	other := jwtService.HashToken("another-token")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, first, 64) // hex-encoded SHA-256
	assert.NotContains(t, first, "some-token")
}
