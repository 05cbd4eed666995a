package repository

import (
	"context"

	"billing/internal/domain/entity"
)

// WebhookEventRepository journals verified webhook deliveries.
type WebhookEventRepository interface {
	// Record stores the delivery if it is new. When the provider event id was seen before
	// the stored row is returned with created set to false.
	Record(ctx context.Context, event *entity.WebhookEvent) (stored *entity.WebhookEvent, created bool, err error)

	// MarkProcessed stamps processed_at and the processing error, empty on success.
	MarkProcessed(ctx context.Context, provider, providerEventID, processingError string) error
}
