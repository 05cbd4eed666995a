package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName            string     `gorm:"type:varchar(100);not null"`
	PasswordHash        string     `gorm:"type:varchar(255);not null"`
	RoleID              uuid.UUID  `gorm:"type:uuid;not null;index"`
	Role                *RoleModel `gorm:"foreignKey:RoleID"`
	ProcessorCustomerID *string    `gorm:"type:varchar(255);uniqueIndex"`
	RefreshTokenHash    *string    `gorm:"type:varchar(64)"`
	Active              bool       `gorm:"not null;default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RoleModel mirrors the 'roles' reference table.
type RoleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:active"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
