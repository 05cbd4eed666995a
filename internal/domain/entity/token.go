package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenType distinguishes access tokens from refresh tokens inside the signed payload.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenPayload is the transient, signed identity carried by both tokens of a session.
type TokenPayload struct {
	Subject   uuid.UUID
	Email     string
	FullName  string
	Role      string
	Type      TokenType
	TokenID   string // Unique per token so two issuances never produce the same string.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsAdmin reports whether the payload grants the admin role.
func (p *TokenPayload) IsAdmin() bool {
	return p.Role == RoleNameAdmin
}

// TokenPair is what a successful sign-up, sign-in or refresh returns.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
