package service

import (
	"time"

	"billing/internal/domain/entity"
)

// TokenService signs and verifies the two tokens of a session.
type TokenService interface {
	// GenerateTokens signs an access and a refresh token for the user, each with a fresh token id.
	GenerateTokens(user *entity.User) (*entity.TokenPair, error)

	// ValidateToken verifies the signature and expiry of the token with the secret of the
	// given type and checks that the token was issued as that type.
	ValidateToken(tokenString string, tokenType entity.TokenType) (*entity.TokenPayload, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}

// TokenHasher derives the stored fingerprint of a refresh token.
type TokenHasher interface {
	Hash(token string) string

	// Equal compares a token against a stored fingerprint in constant time.
	Equal(token, hash string) bool
}
