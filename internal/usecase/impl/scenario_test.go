package impl

import (
	"context"
	"testing"
	"time"

	"billing/config"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/infra/auth"
	"billing/internal/infra/pubsub"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// billingHarness wires the real token authority, ledger and reconciler over
// in-memory repositories and a fake processor.
type billingHarness struct {
	store      *memStore
	gateway    *fakeGateway
	publisher  *pubsub.MemoryPublisher
	auth       usecase.AuthUsecase
	ledger     usecase.PaymentLedger
	payments   usecase.PaymentUsecase
	reconciler usecase.WebhookUsecase
}

func newBillingHarness(t *testing.T) *billingHarness {
	t.Helper()

	logger := newDiscardLogger()
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		App:  &config.AppConfig{BaseURL: "http://localhost:8080"},
	}
	cfg.SecretKey.Access = "scenario_access_secret_with_enough_length"
	cfg.SecretKey.Refresh = "scenario_refresh_secret_with_enough_length"

	tokenService, err := auth.NewJWTService(cfg, logger)
	require.NoError(t, err)
	hasher, err := auth.NewBcryptHasher(cfg)
	require.NoError(t, err)

	publisher, err := pubsub.NewMemoryPublisher(context.Background(), "mem://billing-"+uuid.NewString(), logger)
	require.NoError(t, err)

	h := &billingHarness{
		store:     newMemStore(),
		gateway:   newFakeGateway(),
		publisher: publisher,
	}
	t.Cleanup(func() { _ = h.publisher.Close() })

	h.auth = NewAuthService(AuthServiceParams{
		TxManager:    h.store,
		UserRepo:     h.store.NewUserRepository(),
		RoleRepo:     h.store.NewRoleRepository(),
		Hasher:       hasher,
		TokenHasher:  auth.NewTokenHasher(),
		TokenService: tokenService,
		Gateway:      h.gateway,
		Logger:       logger,
	})
	h.ledger = NewLedgerService(LedgerServiceParams{
		PaymentRepo: h.store.NewPaymentRepository(),
		Logger:      logger,
	})
	h.payments = NewPaymentService(PaymentServiceParams{
		UserRepo:  h.store.NewUserRepository(),
		Ledger:    h.ledger,
		Gateway:   h.gateway,
		Publisher: h.publisher,
		Config:    cfg,
		Logger:    logger,
	})
	h.reconciler = NewReconcilerService(ReconcilerServiceParams{
		Gateway:   h.gateway,
		EventRepo: h.store.NewWebhookEventRepository(),
		UserRepo:  h.store.NewUserRepository(),
		Ledger:    h.ledger,
		Publisher: h.publisher,
		Logger:    logger,
	})

	return h
}

func (h *billingHarness) register(t *testing.T, email string) (*usecase.AuthOutput, string) {
	t.Helper()

	output, err := h.auth.Register(context.Background(), &usecase.RegisterInput{
		Email:    email,
		Password: "correct horse battery",
		FullName: "Ada Lovelace",
	})
	require.NoError(t, err)

	user, err := h.store.NewUserRepository().FindByID(context.Background(), output.User.ID)
	require.NoError(t, err)
	require.NotNil(t, user.ProcessorCustomerID)

	return output, *user.ProcessorCustomerID
}

func (h *billingHarness) completeCheckout(t *testing.T, eventID, sessionID, customerRef, paymentID string) *usecase.WebhookResult {
	t.Helper()

	body := h.gateway.deliver(&entity.GatewayEvent{
		ID:   eventID,
		Type: "checkout.session.completed",
		Kind: entity.EventKindCheckoutCompleted,
		Checkout: &entity.CheckoutCompletion{
			SessionID:         sessionID,
			ExternalPaymentID: paymentID,
			CustomerRef:       customerRef,
			AmountTotal:       2900,
			Currency:          "usd",
		},
	})

	result, err := h.reconciler.HandleWebhook(context.Background(), body, fakeValidSignature)
	require.NoError(t, err)

	return result
}

func TestBilling_SignUpThenSignIn(t *testing.T) {
	h := newBillingHarness(t)
	ctx := context.Background()

	registered, _ := h.register(t, "ada@example.com")

	signedIn, err := h.auth.Authenticate(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "correct horse battery"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, signedIn.User.ID)

	payload, err := h.auth.ValidateAccess(ctx, signedIn.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, payload.Subject)
	assert.Equal(t, entity.RoleNameUser, payload.Role)

	_, err = h.auth.ValidateAccess(ctx, signedIn.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestBilling_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	h := newBillingHarness(t)
	ctx := context.Background()

	h.register(t, "ada@example.com")

	_, wrongPassword := h.auth.Authenticate(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "nope nope nope"})
	_, unknownEmail := h.auth.Authenticate(ctx, &usecase.LoginInput{Email: "eve@example.com", Password: "nope nope nope"})

	require.Error(t, wrongPassword)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestBilling_DuplicateEmailRejected(t *testing.T) {
	h := newBillingHarness(t)

	h.register(t, "ada@example.com")

	_, err := h.auth.Register(context.Background(), &usecase.RegisterInput{
		Email:    "ada@example.com",
		Password: "another password",
		FullName: "Someone Else",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestBilling_ProcessorTimeoutLeavesNoUser(t *testing.T) {
	h := newBillingHarness(t)
	h.gateway.stallCustomers = true

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	output, err := h.auth.Register(ctx, &usecase.RegisterInput{
		Email:    "ada@example.com",
		Password: "correct horse battery",
		FullName: "Ada Lovelace",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrGatewayFailure)

	_, err = h.store.NewUserRepository().FindByEmail(context.Background(), "ada@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	users, err := h.store.NewUserRepository().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestBilling_RefreshTokenRotatesExactlyOnce(t *testing.T) {
	h := newBillingHarness(t)
	ctx := context.Background()

	registered, _ := h.register(t, "ada@example.com")

	rotated, err := h.auth.Rotate(ctx, registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, registered.RefreshToken, rotated.RefreshToken)

	_, err = h.auth.Rotate(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)

	_, err = h.auth.Rotate(ctx, rotated.RefreshToken)
	assert.NoError(t, err)
}

func TestBilling_RefreshFailuresLookAlike(t *testing.T) {
	h := newBillingHarness(t)
	ctx := context.Background()

	registered, _ := h.register(t, "ada@example.com")
	_, err := h.auth.Rotate(ctx, registered.RefreshToken)
	require.NoError(t, err)

	_, replayErr := h.auth.Rotate(ctx, registered.RefreshToken)
	_, forgedErr := h.auth.Rotate(ctx, "not.a.jwt")

	var replayed, forged domainerrors.AppError
	require.ErrorAs(t, replayErr, &replayed)
	require.ErrorAs(t, forgedErr, &forged)

	assert.Equal(t, "REFRESH_TOKEN_INVALID", replayed.ErrorCode())
	assert.Equal(t, "Invalid or expired refresh token", replayed.Message())
	assert.Equal(t, forged.ErrorCode(), replayed.ErrorCode())
	assert.Equal(t, forged.Message(), replayed.Message())
	assert.Equal(t, forged.HTTPCode(), replayed.HTTPCode())
}

func TestBilling_SignInRevokesPreviousRefreshToken(t *testing.T) {
	h := newBillingHarness(t)
	ctx := context.Background()

	registered, _ := h.register(t, "ada@example.com")

	_, err := h.auth.Authenticate(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "correct horse battery"})
	require.NoError(t, err)

	_, err = h.auth.Rotate(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestBilling_DuplicateCheckoutCompletedCreatesOneRecord(t *testing.T) {
	h := newBillingHarness(t)
	ctx := context.Background()

	registered, customerRef := h.register(t, "ada@example.com")
	checkout, err := h.payments.CreateCheckout(ctx, &usecase.CheckoutInput{UserID: registered.User.ID, PriceID: "price_basic"})
	require.NoError(t, err)

	first := h.completeCheckout(t, "evt_1", checkout.SessionID, customerRef, "pi_1")
	assert.True(t, first.Received)
	assert.False(t, first.Duplicate)

	replay := h.completeCheckout(t, "evt_1", checkout.SessionID, customerRef, "pi_1")
	assert.True(t, replay.Duplicate)

	redelivered := h.completeCheckout(t, "evt_2", checkout.SessionID, customerRef, "pi_1")
	assert.True(t, redelivered.Received)
	assert.Empty(t, redelivered.Error)

	payments, err := h.store.NewPaymentRepository().List(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, entity.PaymentStatusCompleted, payments[0].Status)
	assert.Equal(t, "price_basic", payments[0].PriceID)
	assert.Equal(t, "prod_price_basic", payments[0].PlanID)
	assert.Equal(t, checkout.SessionID, payments[0].Metadata[metadataCheckoutSession])
}

func TestBilling_PaymentSucceededBeforeCheckoutIsNoop(t *testing.T) {
	h := newBillingHarness(t)
	ctx := context.Background()

	registered, customerRef := h.register(t, "ada@example.com")
	checkout, err := h.payments.CreateCheckout(ctx, &usecase.CheckoutInput{UserID: registered.User.ID, PriceID: "price_basic"})
	require.NoError(t, err)

	body := h.gateway.deliver(&entity.GatewayEvent{
		ID:      "evt_early",
		Type:    "payment_intent.succeeded",
		Kind:    entity.EventKindPaymentSucceeded,
		Payment: &entity.PaymentOutcome{ExternalPaymentID: "pi_1"},
	})
	result, err := h.reconciler.HandleWebhook(ctx, body, fakeValidSignature)
	require.NoError(t, err)
	assert.True(t, result.Received)
	assert.Empty(t, result.Error)

	payment, err := h.ledger.FindByExternalID(ctx, "pi_1")
	require.NoError(t, err)
	assert.Nil(t, payment)

	h.completeCheckout(t, "evt_late", checkout.SessionID, customerRef, "pi_1")

	payment, err = h.ledger.FindByExternalID(ctx, "pi_1")
	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
}

func TestBilling_ActivePaymentFollowsCheckoutAndCancel(t *testing.T) {
	h := newBillingHarness(t)
	ctx := context.Background()

	registered, customerRef := h.register(t, "ada@example.com")
	userID := registered.User.ID

	active, err := h.ledger.HasActivePayment(ctx, userID)
	require.NoError(t, err)
	assert.False(t, active)

	checkout, err := h.payments.CreateCheckout(ctx, &usecase.CheckoutInput{UserID: userID, PriceID: "price_basic"})
	require.NoError(t, err)
	h.completeCheckout(t, "evt_1", checkout.SessionID, customerRef, "pi_1")

	active, err = h.ledger.HasActivePayment(ctx, userID)
	require.NoError(t, err)
	assert.True(t, active)

	_, err = h.payments.CreateCheckout(ctx, &usecase.CheckoutInput{UserID: userID, PriceID: "price_basic"})
	assert.ErrorIs(t, err, domainerrors.ErrActivePaymentExists)

	cancelled, err := h.payments.CancelActivePayment(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)

	active, err = h.ledger.HasActivePayment(ctx, userID)
	require.NoError(t, err)
	assert.False(t, active)

	_, err = h.payments.CancelActivePayment(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)

	_, err = h.payments.CreateCheckout(ctx, &usecase.CheckoutInput{UserID: userID, PriceID: "price_basic"})
	assert.NoError(t, err)
}

func TestBilling_UnsignedDeliveryChangesNothing(t *testing.T) {
	h := newBillingHarness(t)
	ctx := context.Background()

	_, customerRef := h.register(t, "ada@example.com")
	body := h.gateway.deliver(&entity.GatewayEvent{
		ID:   "evt_forged",
		Type: "checkout.session.completed",
		Kind: entity.EventKindCheckoutCompleted,
		Checkout: &entity.CheckoutCompletion{
			SessionID:         "cs_forged",
			ExternalPaymentID: "pi_forged",
			CustomerRef:       customerRef,
		},
	})

	_, err := h.reconciler.HandleWebhook(ctx, body, "t=1,v1=forged")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSignature)

	_, err = h.reconciler.HandleWebhook(ctx, body, "")
	assert.ErrorIs(t, err, domainerrors.ErrMissingSignature)

	assert.Empty(t, h.store.events)
	assert.Empty(t, h.store.payments)
}

func TestBilling_EndToEnd(t *testing.T) {
	h := newBillingHarness(t)
	ctx := context.Background()

	subscription := h.publisher.Subscribe(time.Minute)
	t.Cleanup(func() { _ = subscription.Shutdown(context.Background()) })

	registered, customerRef := h.register(t, "ada@example.com")

	signedIn, err := h.auth.Authenticate(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "correct horse battery"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.Email, signedIn.User.Email)

	checkout, err := h.payments.CreateCheckout(ctx, &usecase.CheckoutInput{UserID: registered.User.ID, PriceID: "price_pro"})
	require.NoError(t, err)
	assert.NotEmpty(t, checkout.URL)

	result := h.completeCheckout(t, "evt_checkout", checkout.SessionID, customerRef, "pi_42")
	assert.Equal(t, &usecase.WebhookResult{Received: true}, result)

	succeeded := h.gateway.deliver(&entity.GatewayEvent{
		ID:      "evt_succeeded",
		Type:    "payment_intent.succeeded",
		Kind:    entity.EventKindPaymentSucceeded,
		Payment: &entity.PaymentOutcome{ExternalPaymentID: "pi_42"},
	})
	result, err = h.reconciler.HandleWebhook(ctx, succeeded, fakeValidSignature)
	require.NoError(t, err)
	assert.True(t, result.Received)

	active, err := h.payments.GetActivePayment(ctx, registered.User.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "pi_42", active.ExternalPaymentID)
	assert.Equal(t, int64(2900), active.Amount)

	_, err = h.payments.CancelActivePayment(ctx, registered.User.ID)
	require.NoError(t, err)

	failed := h.gateway.deliver(&entity.GatewayEvent{
		ID:      "evt_failed",
		Type:    "payment_intent.payment_failed",
		Kind:    entity.EventKindPaymentFailed,
		Payment: &entity.PaymentOutcome{ExternalPaymentID: "pi_42", FailureMessage: "card declined"},
	})
	result, err = h.reconciler.HandleWebhook(ctx, failed, fakeValidSignature)
	require.NoError(t, err)
	assert.True(t, result.Received)

	payment, err := h.ledger.FindByExternalID(ctx, "pi_42")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCancelled, payment.Status)

	receiveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var statuses []string
	for range 2 {
		msg, err := subscription.Receive(receiveCtx)
		require.NoError(t, err)
		msg.Ack()
		statuses = append(statuses, msg.Metadata["status"])
	}
	assert.Equal(t, []string{"completed", "cancelled"}, statuses)
}
