package repository

import (
	"context"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentRepository persists ledger entries.
type PaymentRepository interface {
	// CreateIfAbsent inserts the payment unless one with the same external id exists.
	// It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, payment *entity.Payment) (bool, error)

	// FindByExternalID returns ErrPaymentNotFound when absent.
	FindByExternalID(ctx context.Context, externalID string) (*entity.Payment, error)

	// FindLatestByStatus returns the user's most recent payment in the status, by paid_at.
	FindLatestByStatus(ctx context.Context, userID uuid.UUID, status entity.PaymentStatus) (*entity.Payment, error)

	// ExistsByStatus reports whether the user has any payment in the status.
	ExistsByStatus(ctx context.Context, userID uuid.UUID, status entity.PaymentStatus) (bool, error)

	// UpdateStatus moves the payment to status only if it is currently in one of from.
	// It returns the updated row and whether the conditional update matched.
	UpdateStatus(ctx context.Context, externalID string, status entity.PaymentStatus, from []entity.PaymentStatus, update entity.PaymentUpdate) (*entity.Payment, bool, error)

	// List returns every payment, newest first.
	List(ctx context.Context) ([]*entity.Payment, error)
}
