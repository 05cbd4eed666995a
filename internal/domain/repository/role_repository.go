package repository

import (
	"context"

	"billing/internal/domain/entity"
)

// RoleRepository reads the immutable role reference data.
type RoleRepository interface {
	// FindByName returns ErrRoleMissing when the role is absent.
	FindByName(ctx context.Context, name string) (*entity.Role, error)

	// EnsureRole inserts the role if its name is not taken yet and returns the stored row.
	EnsureRole(ctx context.Context, role *entity.Role) (*entity.Role, error)
}
