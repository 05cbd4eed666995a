package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/domain/service"
	"billing/internal/errors"
	"billing/internal/usecase"

	"go.uber.org/fx"
)

const metadataCheckoutSession = "checkout_session_id"

// reconcilerService implements the WebhookUsecase interface.
type reconcilerService struct {
	gateway   service.PaymentGateway
	eventRepo repository.WebhookEventRepository
	userRepo  repository.UserRepository
	ledger    usecase.PaymentLedger
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// ReconcilerServiceParams holds dependencies for ReconcilerService, injected by Fx.
type ReconcilerServiceParams struct {
	fx.In

	Gateway   service.PaymentGateway
	EventRepo repository.WebhookEventRepository
	UserRepo  repository.UserRepository
	Ledger    usecase.PaymentLedger
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewReconcilerService is the constructor for reconcilerService.
func NewReconcilerService(params ReconcilerServiceParams) usecase.WebhookUsecase {
	return &reconcilerService{
		gateway:   params.Gateway,
		eventRepo: params.EventRepo,
		userRepo:  params.UserRepo,
		ledger:    params.Ledger,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *reconcilerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleWebhook verifies the delivery and applies it to the ledger. Once the
// signature checks out the delivery is always acknowledged, so the processor
// does not retry events that can never succeed.
func (srv *reconcilerService) HandleWebhook(ctx context.Context, rawBody []byte, signature string) (*usecase.WebhookResult, error) {
	if signature == "" {
		return nil, domainerrors.ErrMissingSignature
	}

	event, err := srv.gateway.VerifySignedEvent(rawBody, signature)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidSignature) || errors.Is(err, domainerrors.ErrMissingSignature) {
			srv.log(ctx).Warn("Rejected webhook delivery", slog.Any("error", err))

			return nil, err
		}

		srv.log(ctx).Error("Failed to decode verified webhook event", slog.Any("error", err))

		return &usecase.WebhookResult{Received: true, Error: err.Error()}, nil
	}

	logger := srv.log(ctx).With(
		slog.String("eventID", event.ID),
		slog.String("eventType", event.Type),
	)

	stored, created, err := srv.eventRepo.Record(ctx, &entity.WebhookEvent{
		Provider:        srv.gateway.Provider(),
		ProviderEventID: event.ID,
		EventType:       event.Type,
		Payload:         event.Payload,
	})
	if err != nil {
		// The ledger itself is idempotent, so processing continues without the journal.
		logger.Error("Failed to journal webhook event", slog.Any("error", err))
	} else if !created && stored.IsProcessed() {
		logger.Info("Duplicate webhook delivery skipped")

		return &usecase.WebhookResult{Received: true, Duplicate: true}, nil
	}

	processingErr := srv.dispatchGuarded(ctx, logger, event)

	if err == nil {
		message := ""
		if processingErr != nil {
			message = processingErr.Error()
		}
		if markErr := srv.eventRepo.MarkProcessed(ctx, srv.gateway.Provider(), event.ID, message); markErr != nil {
			logger.Error("Failed to mark webhook event processed", slog.Any("error", markErr))
		}
	}

	if processingErr != nil {
		logger.Error("Webhook event processing failed", slog.Any("error", processingErr))

		return &usecase.WebhookResult{Received: true, Error: processingErr.Error()}, nil
	}

	return &usecase.WebhookResult{Received: true}, nil
}

// dispatchGuarded turns a panic in a handler into a processing error.
func (srv *reconcilerService) dispatchGuarded(ctx context.Context, logger *slog.Logger, event *entity.GatewayEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domainerrors.ErrInternalError.WrapMessage(fmt.Sprintf("panic while processing event: %v", r))
		}
	}()

	return srv.dispatch(ctx, logger, event)
}

func (srv *reconcilerService) dispatch(ctx context.Context, logger *slog.Logger, event *entity.GatewayEvent) error {
	switch event.Kind {
	case entity.EventKindCheckoutCompleted:
		return srv.handleCheckoutCompleted(ctx, logger, event.Checkout)
	case entity.EventKindPaymentSucceeded:
		return srv.handlePaymentOutcome(ctx, logger, event.Payment, entity.PaymentStatusCompleted)
	case entity.EventKindPaymentFailed:
		return srv.handlePaymentOutcome(ctx, logger, event.Payment, entity.PaymentStatusFailed)
	default:
		logger.Debug("Ignoring unhandled webhook event type")

		return nil
	}
}

// handleCheckoutCompleted records the completed payment of a checkout session.
func (srv *reconcilerService) handleCheckoutCompleted(ctx context.Context, logger *slog.Logger, checkout *entity.CheckoutCompletion) error {
	if checkout == nil || checkout.ExternalPaymentID == "" {
		logger.Warn("Checkout completed without a payment reference")

		return nil
	}
	logger = logger.With(
		slog.String("sessionID", checkout.SessionID),
		slog.String("externalPaymentID", checkout.ExternalPaymentID),
	)

	items, err := srv.gateway.ListCheckoutLineItems(ctx, checkout.SessionID)
	if err != nil {
		return errors.Wrap(err, "failed to list checkout line items")
	}
	if len(items) == 0 {
		logger.Warn("Checkout completed without line items")

		return nil
	}

	user, err := srv.userRepo.FindByCustomerID(ctx, checkout.CustomerRef)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		logger.Warn("Checkout completed for an unknown customer", slog.String("customerRef", checkout.CustomerRef))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to resolve checkout customer")
	}

	paidAt := srv.now()
	metadata := map[string]string{metadataCheckoutSession: checkout.SessionID}
	stored, created, err := srv.ledger.Create(ctx, &entity.Payment{
		UserID:            user.ID,
		PlanID:            items[0].ProductID,
		PriceID:           items[0].PriceID,
		ExternalPaymentID: checkout.ExternalPaymentID,
		Status:            entity.PaymentStatusCompleted,
		Amount:            checkout.AmountTotal,
		Currency:          checkout.Currency,
		PaidAt:            &paidAt,
		Metadata:          metadata,
	})
	if err != nil {
		return err
	}

	if created {
		publishTransition(ctx, srv.publisher, srv.logger, &usecase.LedgerTransition{
			Payment:        stored,
			PreviousStatus: entity.PaymentStatusPending,
		})

		return nil
	}

	if stored.Status != entity.PaymentStatusPending {
		logger.Info("Checkout already recorded", slog.String("status", stored.Status.String()))

		return nil
	}

	transition, err := srv.ledger.UpdateStatus(ctx, checkout.ExternalPaymentID, entity.PaymentStatusCompleted, entity.PaymentUpdate{
		PaidAt:   &paidAt,
		Metadata: metadata,
	})
	if errors.Is(err, domainerrors.ErrInvalidTransition) {
		logger.Warn("Pending payment changed before checkout completion was applied", slog.Any("error", err))

		return nil
	}
	if err != nil {
		return err
	}

	publishTransition(ctx, srv.publisher, srv.logger, transition)

	return nil
}

// handlePaymentOutcome moves an existing record to status. Unknown payments are
// skipped, the checkout event creates them.
func (srv *reconcilerService) handlePaymentOutcome(
	ctx context.Context,
	logger *slog.Logger,
	outcome *entity.PaymentOutcome,
	status entity.PaymentStatus,
) error {
	if outcome == nil || outcome.ExternalPaymentID == "" {
		logger.Warn("Payment event without a payment reference")

		return nil
	}
	logger = logger.With(slog.String("externalPaymentID", outcome.ExternalPaymentID))

	current, err := srv.ledger.FindByExternalID(ctx, outcome.ExternalPaymentID)
	if err != nil {
		return err
	}
	if current == nil {
		logger.Info("Payment event for an unrecorded payment skipped")

		return nil
	}
	if current.Status == status {
		logger.Debug("Payment already in target status", slog.String("status", status.String()))

		return nil
	}

	update := entity.PaymentUpdate{}
	if status == entity.PaymentStatusCompleted {
		paidAt := srv.now()
		update.PaidAt = &paidAt
	}
	if outcome.FailureMessage != "" {
		update.Metadata = map[string]string{"failure_message": outcome.FailureMessage}
	}

	transition, err := srv.ledger.UpdateStatus(ctx, outcome.ExternalPaymentID, status, update)
	if errors.Is(err, domainerrors.ErrInvalidTransition) {
		logger.Warn("Ignoring out-of-order payment event",
			slog.String("current", current.Status.String()),
			slog.String("target", status.String()),
		)

		return nil
	}
	if err != nil {
		return err
	}

	publishTransition(ctx, srv.publisher, srv.logger, transition)

	return nil
}
