package impl

import (
	"context"
	"log/slog"

	"billing/config"
	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/domain/service"
	"billing/internal/errors"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	checkoutSuccessPath = "/subscription/success?session_id={CHECKOUT_SESSION_ID}"
	checkoutCancelPath  = "/subscription/cancel"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	userRepo  repository.UserRepository
	ledger    usecase.PaymentLedger
	gateway   service.PaymentGateway
	publisher service.EventPublisher
	baseURL   string
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Ledger    usecase.PaymentLedger
	Gateway   service.PaymentGateway
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	baseURL := ""
	if params.Config != nil && params.Config.App != nil {
		baseURL = params.Config.App.BaseURL
	}

	return &paymentService{
		userRepo:  params.UserRepo,
		ledger:    params.Ledger,
		gateway:   params.Gateway,
		publisher: params.Publisher,
		baseURL:   baseURL,
		logger:    params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCheckout opens a hosted checkout for the price.
func (srv *paymentService) CreateCheckout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for checkout")
	}
	if !user.HasCustomer() {
		return nil, domainerrors.ErrCustomerNotFound
	}

	active, err := srv.ledger.HasActivePayment(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, domainerrors.ErrActivePaymentExists
	}

	session, err := srv.gateway.CreateCheckoutSession(ctx,
		input.PriceID,
		*user.ProcessorCustomerID,
		srv.baseURL+checkoutSuccessPath,
		srv.baseURL+checkoutCancelPath,
	)
	if err != nil {
		return nil, asGatewayFailure(err)
	}

	srv.log(ctx).Info("Checkout session created",
		slog.String("userID", user.ID.String()),
		slog.String("sessionID", session.ID),
		slog.String("priceID", input.PriceID),
	)

	return &usecase.CheckoutOutput{SessionID: session.ID, URL: session.URL}, nil
}

// GetActivePayment returns the latest completed payment, or nil.
func (srv *paymentService) GetActivePayment(ctx context.Context, userID uuid.UUID) (*entity.Payment, error) {
	return srv.ledger.FindActiveForUser(ctx, userID)
}

// CancelActivePayment cancels the user's active payment.
func (srv *paymentService) CancelActivePayment(ctx context.Context, userID uuid.UUID) (*entity.Payment, error) {
	active, err := srv.ledger.FindActiveForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, domainerrors.ErrPaymentNotFound.WrapMessage("no active payment")
	}

	transition, err := srv.ledger.Cancel(ctx, active.ExternalPaymentID)
	if err != nil {
		return nil, err
	}

	publishTransition(ctx, srv.publisher, srv.logger, transition)

	return transition.Payment, nil
}
