// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"billing/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by every operation that starts or continues a session.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.UserView
}

// AuthUsecase is the token authority: it registers users, signs them in
// and rotates their single live refresh token.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Authenticate(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Rotate(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// IssueTokens signs a new pair for the user and overwrites the stored refresh hash.
	IssueTokens(ctx context.Context, user *entity.User) (*entity.TokenPair, error)

	// ValidateAccess returns the payload of a valid access token or ErrUnauthorized.
	ValidateAccess(ctx context.Context, accessToken string) (*entity.TokenPayload, error)
}
