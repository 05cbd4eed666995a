package model

import (
	"time"

	"github.com/google/uuid"
)

// WebhookEventModel mirrors the 'webhook_events' journal table.
type WebhookEventModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Provider        string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_webhook_events_provider_event"`
	ProviderEventID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_webhook_events_provider_event"`
	EventType       string    `gorm:"type:varchar(100);not null"`
	Payload         []byte    `gorm:"type:jsonb"`
	ProcessedAt     *time.Time
	ProcessingError string `gorm:"type:text"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (WebhookEventModel) TableName() string {
	return "webhook_events"
}

// All returns every model in migration order.
func All() []any {
	return []any{
		&RoleModel{},
		&UserModel{},
		&PaymentModel{},
		&WebhookEventModel{},
	}
}
