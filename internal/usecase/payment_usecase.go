package usecase

import (
	"context"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput is the price the authenticated user wants to buy.
type CheckoutInput struct {
	UserID  uuid.UUID
	PriceID string
}

// CheckoutOutput points the user to the hosted checkout page.
type CheckoutOutput struct {
	SessionID string
	URL       string
}

// PaymentUsecase is the user-facing side of the ledger.
type PaymentUsecase interface {
	// CreateCheckout refuses users that already hold a completed payment.
	CreateCheckout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error)

	// GetActivePayment returns the latest completed payment, or nil.
	GetActivePayment(ctx context.Context, userID uuid.UUID) (*entity.Payment, error)

	// CancelActivePayment returns ErrPaymentNotFound when the user has nothing to cancel.
	CancelActivePayment(ctx context.Context, userID uuid.UUID) (*entity.Payment, error)
}

// AdminUsecase lists accounts and ledger records for administrators.
type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.UserView, error)
	ListPayments(ctx context.Context) ([]*entity.Payment, error)
}
