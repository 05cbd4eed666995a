package entity

import (
	"time"

	"github.com/google/uuid"
)

// WebhookEvent is the journal row of a verified webhook delivery.
type WebhookEvent struct {
	ID              uuid.UUID
	Provider        string
	ProviderEventID string
	EventType       string
	Payload         []byte
	ProcessedAt     *time.Time
	ProcessingError string
	CreatedAt       time.Time
}

// IsProcessed reports whether the delivery was already applied successfully.
func (e *WebhookEvent) IsProcessed() bool {
	return e.ProcessedAt != nil && e.ProcessingError == ""
}
