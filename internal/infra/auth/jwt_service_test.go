package auth

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"billing/config"
	"billing/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
		RoleName: entity.RoleNameUser,
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(), newDiscardLogger())
	require.NoError(t, err)

	user := newTestUser()

	pair, err := jwtService.GenerateTokens(user)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	access, err := jwtService.ValidateToken(pair.AccessToken, entity.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, access.Subject)
	assert.Equal(t, user.Email, access.Email)
	assert.Equal(t, user.FullName, access.FullName)
	assert.Equal(t, entity.RoleNameUser, access.Role)
	assert.Equal(t, entity.TokenTypeAccess, access.Type)
	assert.NotEmpty(t, access.TokenID)
	assert.WithinDuration(t, access.IssuedAt.Add(15*time.Minute), access.ExpiresAt, time.Second)

	refresh, err := jwtService.ValidateToken(pair.RefreshToken, entity.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refresh.Subject)
	assert.WithinDuration(t, refresh.IssuedAt.Add(7*24*time.Hour), refresh.ExpiresAt, time.Second)
	assert.Equal(t, 7*24*time.Hour, jwtService.GetRefreshTokenDuration())
}

func TestJWTService_TokensAreUniquePerIssuance(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(), newDiscardLogger())
	require.NoError(t, err)

	user := newTestUser()
	first, err := jwtService.GenerateTokens(user)
	require.NoError(t, err)
	second, err := jwtService.GenerateTokens(user)
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.NotEqual(t, first.AccessToken, second.AccessToken)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(), newDiscardLogger())
	require.NoError(t, err)

	pair, err := jwtService.GenerateTokens(newTestUser())
	require.NoError(t, err)

	// Signed with the refresh secret, so the access secret rejects it.
	_, err = jwtService.ValidateToken(pair.RefreshToken, entity.TokenTypeAccess)
	assert.Error(t, err)

	_, err = jwtService.ValidateToken(pair.AccessToken, entity.TokenTypeRefresh)
	assert.Error(t, err)
}

func TestJWTService_RejectsTypeMismatchWithSharedSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Shared = "shared_secret_used_for_both_tokens"

	jwtService, err := NewJWTService(cfg, newDiscardLogger())
	require.NoError(t, err)

	pair, err := jwtService.GenerateTokens(newTestUser())
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(pair.RefreshToken, entity.TokenTypeAccess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected token type")
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(), newDiscardLogger())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-time.Hour) }
	pair, err := impl.GenerateTokens(newTestUser())
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(pair.AccessToken, entity.TokenTypeAccess)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsOtherSigningMethods(t *testing.T) {
	cfg := newTestConfig()
	jwtService, err := NewJWTService(cfg, newDiscardLogger())
	require.NoError(t, err)

	claims := tokenClaims{
		Type: string(entity.TokenTypeAccess),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token, entity.TokenTypeAccess)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(), newDiscardLogger())
	require.NoError(t, err)

	payload, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", entity.TokenTypeAccess)
	assert.Error(t, err)
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestNewJWTService_SecretRequirements(t *testing.T) {
	t.Run("no secrets at all", func(t *testing.T) {
		_, err := NewJWTService(&config.Config{}, newDiscardLogger())
		assert.Error(t, err)
	})

	t.Run("dedicated secrets required", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{RequireDedicatedSecrets: true}}
		cfg.SecretKey.Access = "only-access"
		cfg.SecretKey.Shared = "shared"

		_, err := NewJWTService(cfg, newDiscardLogger())
		assert.Error(t, err)
	})

	t.Run("partial fallback", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.SecretKey.Access = "only-access"
		cfg.SecretKey.Shared = "shared"

		svc, err := NewJWTService(cfg, newDiscardLogger())
		require.NoError(t, err)

		impl := svc.(*jwtService)
		assert.Equal(t, []byte("only-access"), impl.accessSecret)
		assert.Equal(t, []byte("shared"), impl.refreshSecret)
	})

	t.Run("custom ttl", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Auth.AccessTTL = time.Minute
		cfg.Auth.RefreshTTL = time.Hour

		svc, err := NewJWTService(cfg, newDiscardLogger())
		require.NoError(t, err)
		assert.Equal(t, time.Hour, svc.GetRefreshTokenDuration())
	})
}
