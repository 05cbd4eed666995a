package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/service"
	"billing/internal/usecase"
)

// publishTransition announces an applied ledger change. Failures are logged only.
func publishTransition(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, transition *usecase.LedgerTransition) {
	if publisher == nil || transition == nil || transition.Payment == nil {
		return
	}

	triggeredBy := service.TriggeredByProcessor
	if principal, ok := deliverycontext.PrincipalFromContext(ctx); ok {
		triggeredBy = principal.Subject.String()
	}

	payment := transition.Payment
	event := &service.PaymentEvent{
		RequestID:         deliverycontext.GetRequestIDFromContext(ctx),
		PaymentID:         payment.ID.String(),
		UserID:            payment.UserID.String(),
		ExternalPaymentID: payment.ExternalPaymentID,
		PreviousStatus:    transition.PreviousStatus.String(),
		Status:            payment.Status.String(),
		Amount:            payment.Amount,
		Currency:          payment.Currency,
		TriggeredBy:       triggeredBy,
		OccurredAt:        time.Now().UTC(),
	}

	if err := publisher.PublishPaymentEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to publish payment event",
			slog.String("externalPaymentID", event.ExternalPaymentID),
			slog.String("status", event.Status),
			slog.Any("error", err),
		)
	}
}
