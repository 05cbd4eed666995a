// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Well-known role names seeded by the migration command.
const (
	RoleNameAdmin = "admin"
	RoleNameUser  = "user"
)

// RoleStatus tells whether a role may still be assigned.
type RoleStatus string

const (
	RoleStatusActive   RoleStatus = "active"
	RoleStatusInactive RoleStatus = "inactive"
)

// Role is immutable reference data. Users only hold its ID.
type Role struct {
	ID          uuid.UUID
	Name        string
	Status      RoleStatus
	Description string
	CreatedAt   time.Time
}

// IsActive reports whether the role can be assigned to new users.
func (r *Role) IsActive() bool {
	return r.Status == RoleStatusActive
}

// DefaultRoles returns the reference roles every deployment needs.
func DefaultRoles() []*Role {
	return []*Role{
		{Name: RoleNameAdmin, Status: RoleStatusActive, Description: "Administrator role with full access"},
		{Name: RoleNameUser, Status: RoleStatusActive, Description: "Regular user role"},
	}
}
