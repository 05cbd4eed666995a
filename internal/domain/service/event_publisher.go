package service

import (
	"context"
	"time"
)

// TriggeredByProcessor marks transitions applied from a processor webhook.
const TriggeredByProcessor = "processor"

// PaymentEvent is published after each applied ledger transition.
type PaymentEvent struct {
	RequestID         string    `json:"request_id,omitempty"` // For distributed tracing
	PaymentID         string    `json:"payment_id"`
	UserID            string    `json:"user_id"`
	ExternalPaymentID string    `json:"external_payment_id"`
	PreviousStatus    string    `json:"previous_status,omitempty"`
	Status            string    `json:"status"`
	Amount            int64     `json:"amount"`
	Currency          string    `json:"currency"`
	TriggeredBy       string    `json:"triggered_by"` // User id for user actions, "processor" for webhook deliveries
	OccurredAt        time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPaymentEvent publishes a ledger transition for downstream consumers
	PublishPaymentEvent(ctx context.Context, event *PaymentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
