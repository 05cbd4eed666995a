// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository is the credential store. Every read joins the role so that
// entity.User.RoleName is always populated.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDFromPrimary reads from the primary so the latest refresh hash is visible.
	FindByIDFromPrimary(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByCustomerID resolves the owner of a payment processor customer.
	FindByCustomerID(ctx context.Context, customerID string) (*entity.User, error)

	// ExistsByEmail reports whether an account already uses the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user. A duplicate email returns ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// SetRefreshTokenHash overwrites the single live refresh hash. A nil hash signs the user out.
	SetRefreshTokenHash(ctx context.Context, id uuid.UUID, hash *string) error

	// SwapRefreshTokenHash replaces oldHash with newHash only if oldHash is still current.
	// It reports false when another rotation won the race.
	SwapRefreshTokenHash(ctx context.Context, id uuid.UUID, oldHash, newHash string) (bool, error)

	// List returns every user with its role, newest first.
	List(ctx context.Context) ([]*entity.User, error)
}
