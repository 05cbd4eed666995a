// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"billing/config"
	"billing/internal/domain/entity"
	"billing/internal/domain/service"
	"billing/internal/errors"
)

// tokenClaims is the signed payload of both session tokens.
type tokenClaims struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService builds the token service from the secretKey and auth sections.
// A missing dedicated secret falls back to secretKey.shared unless auth.requireDedicatedSecrets is set.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	access, refresh := cfg.SecretKey.Access, cfg.SecretKey.Refresh

	if access == "" || refresh == "" {
		if cfg.Auth != nil && cfg.Auth.RequireDedicatedSecrets {
			return nil, errors.New("dedicated access and refresh secrets are required")
		}
		if cfg.SecretKey.Shared == "" {
			return nil, errors.New("jwt secrets must be provided")
		}

		logger.Warn("Falling back to shared token secret",
			slog.Bool("accessMissing", access == ""),
			slog.Bool("refreshMissing", refresh == ""),
		)
		if access == "" {
			access = cfg.SecretKey.Shared
		}
		if refresh == "" {
			refresh = cfg.SecretKey.Shared
		}
	}

	accessTTL, refreshTTL := 15*time.Minute, 7*24*time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTTL > 0 {
			accessTTL = cfg.Auth.AccessTTL
		}
		if cfg.Auth.RefreshTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(access),
		refreshSecret: []byte(refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for the user.
func (s *jwtService) GenerateTokens(user *entity.User) (*entity.TokenPair, error) {
	accessToken, err := s.generateToken(user, entity.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateToken(user, entity.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	return &entity.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// ValidateToken checks the token against the secret of tokenType. Only HS256 is accepted.
func (s *jwtService) ValidateToken(tokenString string, tokenType entity.TokenType) (*entity.TokenPayload, error) {
	secret, _, err := s.settingsFor(tokenType)
	if err != nil {
		return nil, err
	}

	claims := &tokenClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	if claims.Type != string(tokenType) {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token subject")
	}

	payload := &entity.TokenPayload{
		Subject:  subject,
		Email:    claims.Email,
		FullName: claims.FullName,
		Role:     claims.Role,
		Type:     tokenType,
		TokenID:  claims.ID,
	}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		payload.ExpiresAt = claims.ExpiresAt.Time
	}

	return payload, nil
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) settingsFor(tokenType entity.TokenType) ([]byte, time.Duration, error) {
	switch tokenType {
	case entity.TokenTypeAccess:
		return s.accessSecret, s.accessTTL, nil
	case entity.TokenTypeRefresh:
		return s.refreshSecret, s.refreshTTL, nil
	default:
		return nil, 0, errors.Errorf("unknown token type %q", tokenType)
	}
}

func (s *jwtService) generateToken(user *entity.User, tokenType entity.TokenType) (string, error) {
	secret, ttl, err := s.settingsFor(tokenType)
	if err != nil {
		return "", err
	}

	now := s.now()
	claims := tokenClaims{
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.RoleName,
		Type:     string(tokenType),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign %s token", tokenType)
	}

	return signed, nil
}
