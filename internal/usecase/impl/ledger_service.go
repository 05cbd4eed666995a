package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/errors"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ledgerService implements the PaymentLedger interface.
type ledgerService struct {
	paymentRepo repository.PaymentRepository
	logger      *slog.Logger
	now         func() time.Time
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	PaymentRepo repository.PaymentRepository
	Logger      *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(params LedgerServiceParams) usecase.PaymentLedger {
	return &ledgerService{
		paymentRepo: params.PaymentRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create inserts the payment idempotently on its external id.
func (srv *ledgerService) Create(ctx context.Context, payment *entity.Payment) (*entity.Payment, bool, error) {
	if payment.ExternalPaymentID == "" {
		return nil, false, domainerrors.ErrValidationFailed.WrapMessage("external payment id is required")
	}
	if !payment.Status.IsValid() {
		return nil, false, domainerrors.ErrValidationFailed.WrapMessage("unknown payment status " + payment.Status.String())
	}

	created, err := srv.paymentRepo.CreateIfAbsent(ctx, payment)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to create payment")
	}
	if created {
		srv.log(ctx).Info("Payment recorded",
			slog.String("paymentID", payment.ID.String()),
			slog.String("externalPaymentID", payment.ExternalPaymentID),
			slog.String("status", payment.Status.String()),
		)

		return payment, true, nil
	}

	stored, err := srv.paymentRepo.FindByExternalID(ctx, payment.ExternalPaymentID)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to load existing payment")
	}

	return stored, false, nil
}

// FindActiveForUser returns the latest completed payment, or nil.
func (srv *ledgerService) FindActiveForUser(ctx context.Context, userID uuid.UUID) (*entity.Payment, error) {
	payment, err := srv.paymentRepo.FindLatestByStatus(ctx, userID, entity.PaymentStatusCompleted)
	if errors.Is(err, domainerrors.ErrPaymentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active payment")
	}

	return payment, nil
}

// FindByExternalID returns the payment, or nil.
func (srv *ledgerService) FindByExternalID(ctx context.Context, externalID string) (*entity.Payment, error) {
	payment, err := srv.paymentRepo.FindByExternalID(ctx, externalID)
	if errors.Is(err, domainerrors.ErrPaymentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment")
	}

	return payment, nil
}

// UpdateStatus checks the transition against the current status and applies
// it with a conditional update, so a concurrent change cannot be overwritten.
func (srv *ledgerService) UpdateStatus(
	ctx context.Context,
	externalID string,
	status entity.PaymentStatus,
	update entity.PaymentUpdate,
) (*usecase.LedgerTransition, error) {
	current, err := srv.paymentRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load payment for update")
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage(current.Status.String() + " -> " + status.String())
	}

	updated, matched, err := srv.paymentRepo.UpdateStatus(ctx, externalID, status, status.AllowedFrom(), update)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update payment status")
	}
	if !matched {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage("status changed concurrently")
	}

	srv.log(ctx).Info("Payment status updated",
		slog.String("externalPaymentID", externalID),
		slog.String("from", current.Status.String()),
		slog.String("to", status.String()),
	)

	return &usecase.LedgerTransition{Payment: updated, PreviousStatus: current.Status}, nil
}

// Cancel marks a completed payment as cancelled now.
func (srv *ledgerService) Cancel(ctx context.Context, externalID string) (*usecase.LedgerTransition, error) {
	now := srv.now()

	return srv.UpdateStatus(ctx, externalID, entity.PaymentStatusCancelled, entity.PaymentUpdate{CancelledAt: &now})
}

// HasActivePayment reports whether the user holds a completed payment.
func (srv *ledgerService) HasActivePayment(ctx context.Context, userID uuid.UUID) (bool, error) {
	active, err := srv.paymentRepo.ExistsByStatus(ctx, userID, entity.PaymentStatusCompleted)
	if err != nil {
		return false, errors.Wrap(err, "failed to check active payment")
	}

	return active, nil
}
