package postgres

import (
	"context"
	"time"

	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/infra/persistence/model"
	"billing/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type webhookEventRepository struct {
	q *query.Query
}

// NewWebhookEventRepository is the constructor for webhookEventRepository.
func NewWebhookEventRepository(db *gorm.DB) repository.WebhookEventRepository {
	return &webhookEventRepository{
		q: query.Use(db),
	}
}

// Record inserts the delivery with ON CONFLICT DO NOTHING and loads the stored row.
func (repo *webhookEventRepository) Record(ctx context.Context, event *entity.WebhookEvent) (*entity.WebhookEvent, bool, error) {
	eventM := &model.WebhookEventModel{
		ID:              uuid.New(),
		Provider:        event.Provider,
		ProviderEventID: event.ProviderEventID,
		EventType:       event.EventType,
		Payload:         event.Payload,
	}

	result := repo.q.WebhookEventModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider"}, {Name: "provider_event_id"}},
			DoNothing: true,
		}).
		UnderlyingDB().
		Create(eventM)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record webhook event")
	}

	if result.RowsAffected == 1 {
		return toWebhookEventDomain(eventM), true, nil
	}

	stored, err := repo.q.WebhookEventModel.WithContext(ctx).
		Where(
			repo.q.WebhookEventModel.Provider.Eq(event.Provider),
			repo.q.WebhookEventModel.ProviderEventID.Eq(event.ProviderEventID),
		).
		Take()
	if err != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(err, "failed to load webhook event")
	}

	return toWebhookEventDomain(stored), false, nil
}

// MarkProcessed records the outcome of applying the delivery.
func (repo *webhookEventRepository) MarkProcessed(ctx context.Context, provider, providerEventID, processingError string) error {
	_, err := repo.q.WebhookEventModel.WithContext(ctx).
		Where(
			repo.q.WebhookEventModel.Provider.Eq(provider),
			repo.q.WebhookEventModel.ProviderEventID.Eq(providerEventID),
		).
		UpdateSimple(
			repo.q.WebhookEventModel.ProcessedAt.Value(time.Now()),
			repo.q.WebhookEventModel.ProcessingError.Value(processingError),
		)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark webhook event")
	}

	return nil
}

func toWebhookEventDomain(data *model.WebhookEventModel) *entity.WebhookEvent {
	return &entity.WebhookEvent{
		ID:              data.ID,
		Provider:        data.Provider,
		ProviderEventID: data.ProviderEventID,
		EventType:       data.EventType,
		Payload:         data.Payload,
		ProcessedAt:     data.ProcessedAt,
		ProcessingError: data.ProcessingError,
		CreatedAt:       data.CreatedAt,
	}
}
