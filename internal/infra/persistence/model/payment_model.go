package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' ledger table. The partial unique index keeps
// at most one completed payment per user.
type PaymentModel struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID            uuid.UUID         `gorm:"type:uuid;not null;index;uniqueIndex:idx_payments_one_completed_per_user,where:status = 'completed'"`
	PlanID            string            `gorm:"type:varchar(255)"`
	PriceID           string            `gorm:"type:varchar(255)"`
	ExternalPaymentID string            `gorm:"type:varchar(255);uniqueIndex;not null"`
	Status            string            `gorm:"type:varchar(20);not null;index"`
	Amount            int64             `gorm:"not null;default:0"`
	Currency          string            `gorm:"type:varchar(10)"`
	PaidAt            *time.Time        `gorm:"index"`
	CancelledAt       *time.Time
	Metadata          map[string]string `gorm:"type:jsonb;serializer:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
