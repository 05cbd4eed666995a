package usecase

import (
	"context"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
)

// LedgerTransition is one applied status change.
type LedgerTransition struct {
	Payment        *entity.Payment
	PreviousStatus entity.PaymentStatus
}

// PaymentLedger owns the idempotent payment records. Status changes follow
// pending -> completed -> cancelled and pending -> failed only.
type PaymentLedger interface {
	// Create inserts the record unless one with the same external id exists;
	// created is false and the stored record is returned in that case.
	Create(ctx context.Context, payment *entity.Payment) (stored *entity.Payment, created bool, err error)

	// FindActiveForUser returns the latest completed record by paid_at, or nil.
	FindActiveForUser(ctx context.Context, userID uuid.UUID) (*entity.Payment, error)

	// FindByExternalID returns the record or nil when absent.
	FindByExternalID(ctx context.Context, externalID string) (*entity.Payment, error)

	// UpdateStatus applies a transition. ErrPaymentNotFound when absent,
	// ErrInvalidTransition when the move is not allowed from the current status.
	UpdateStatus(ctx context.Context, externalID string, status entity.PaymentStatus, update entity.PaymentUpdate) (*LedgerTransition, error)

	// Cancel moves a completed record to cancelled with cancelledAt set to now.
	Cancel(ctx context.Context, externalID string) (*LedgerTransition, error)

	HasActivePayment(ctx context.Context, userID uuid.UUID) (bool, error)
}
