// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in and pay. The role name is resolved by the
// credential store through an explicit join, never lazily.
type User struct {
	ID                  uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email               string    // Unique login identifier.
	FullName            string    // Display name sent to the payment processor as the customer name.
	PasswordHash        string    // bcrypt hash of the password.
	RoleID              uuid.UUID // Non-owning reference to a Role.
	RoleName            string    // Denormalised role name filled by the store's join.
	ProcessorCustomerID *string   // Payment processor customer reference, nil until provisioned.
	RefreshTokenHash    *string   // SHA-256 of the single live refresh token, nil when signed out.
	Active              bool      // Inactive accounts cannot authenticate.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasCustomer reports whether the user has been provisioned at the payment processor.
func (u *User) HasCustomer() bool {
	return u.ProcessorCustomerID != nil && *u.ProcessorCustomerID != ""
}

// View strips credentials from the user for API responses.
func (u *User) View() *UserView {
	return &UserView{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.RoleName,
	}
}

// UserView is the credential-free projection of a user.
type UserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}
