package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the lifecycle state of a one-time payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// paymentTransitions lists, for each target state, the states it may be reached from.
// Nothing ever goes back to pending and nothing leaves failed or cancelled.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusCompleted: {PaymentStatusPending},
	PaymentStatusFailed:    {PaymentStatusPending},
	PaymentStatusCancelled: {PaymentStatusCompleted},
}

// String returns the string representation of the status.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known states.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusCancelled:
		return true
	default:
		return false
	}
}

// AllowedFrom returns the states a payment may be in to move to s.
func (s PaymentStatus) AllowedFrom() []PaymentStatus {
	return slices.Clone(paymentTransitions[s])
}

// CanTransitionTo reports whether a payment in state s may move to next.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return slices.Contains(paymentTransitions[next], s)
}

// Payment is one ledger entry: a single payment attempt keyed by the processor's id.
type Payment struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	PlanID            string // Processor product id.
	PriceID           string // Processor price id.
	ExternalPaymentID string // Processor transaction id, the natural key.
	Status            PaymentStatus
	Amount            int64 // Minor currency units.
	Currency          string
	PaidAt            *time.Time
	CancelledAt       *time.Time
	Metadata          map[string]string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsActive reports whether the payment currently grants access.
func (p *Payment) IsActive() bool {
	return p.Status == PaymentStatusCompleted
}

// PaymentUpdate carries the optional fields written together with a status change.
type PaymentUpdate struct {
	PaidAt      *time.Time
	CancelledAt *time.Time
	Metadata    map[string]string
}
