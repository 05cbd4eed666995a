package impl

import (
	"context"
	"testing"

	"billing/config"
	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/service"
	mockRepo "billing/internal/mocks/repository"
	mockSvc "billing/internal/mocks/service"
	mockUsecase "billing/internal/mocks/usecase"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceFixtures struct {
	service   usecase.PaymentUsecase
	userRepo  *mockRepo.MockUserRepository
	ledger    *mockUsecase.MockPaymentLedger
	gateway   *mockSvc.MockPaymentGateway
	publisher *mockSvc.MockEventPublisher
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	fx := paymentServiceFixtures{
		userRepo:  mockRepo.NewMockUserRepository(t),
		ledger:    mockUsecase.NewMockPaymentLedger(t),
		gateway:   mockSvc.NewMockPaymentGateway(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewPaymentService(PaymentServiceParams{
		UserRepo:  fx.userRepo,
		Ledger:    fx.ledger,
		Gateway:   fx.gateway,
		Publisher: fx.publisher,
		Config:    &config.Config{App: &config.AppConfig{BaseURL: "https://billing.example.com"}},
		Logger:    newDiscardLogger(),
	})

	return fx
}

func newCustomerUser() *entity.User {
	customerID := "cus_123"

	return &entity.User{
		ID:                  uuid.New(),
		Email:               "ada@example.com",
		ProcessorCustomerID: &customerID,
		Active:              true,
	}
}

func TestPaymentService_CreateCheckout_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	user := newCustomerUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.ledger.EXPECT().HasActivePayment(ctx, user.ID).Return(false, nil)
	fx.gateway.EXPECT().
		CreateCheckoutSession(ctx,
			"price_basic",
			"cus_123",
			"https://billing.example.com/subscription/success?session_id={CHECKOUT_SESSION_ID}",
			"https://billing.example.com/subscription/cancel",
		).
		Return(&service.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/cs_1"}, nil)

	output, err := fx.service.CreateCheckout(ctx, &usecase.CheckoutInput{UserID: user.ID, PriceID: "price_basic"})

	require.NoError(t, err)
	assert.Equal(t, "cs_1", output.SessionID)
	assert.Equal(t, "https://checkout.stripe.com/c/cs_1", output.URL)
}

func TestPaymentService_CreateCheckout_ActivePaymentExists(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	user := newCustomerUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.ledger.EXPECT().HasActivePayment(ctx, user.ID).Return(true, nil)

	_, err := fx.service.CreateCheckout(ctx, &usecase.CheckoutInput{UserID: user.ID, PriceID: "price_basic"})

	assert.ErrorIs(t, err, domainerrors.ErrActivePaymentExists)
}

func TestPaymentService_CreateCheckout_NoCustomer(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	user := newCustomerUser()
	user.ProcessorCustomerID = nil

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := fx.service.CreateCheckout(ctx, &usecase.CheckoutInput{UserID: user.ID, PriceID: "price_basic"})

	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestPaymentService_CreateCheckout_GatewayFailure(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	user := newCustomerUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.ledger.EXPECT().HasActivePayment(ctx, user.ID).Return(false, nil)
	fx.gateway.EXPECT().
		CreateCheckoutSession(ctx, "price_basic", "cus_123", mock.Anything, mock.Anything).
		Return(nil, errors.New("No such price"))

	_, err := fx.service.CreateCheckout(ctx, &usecase.CheckoutInput{UserID: user.ID, PriceID: "price_basic"})

	assert.ErrorIs(t, err, domainerrors.ErrGatewayFailure)
}

func TestPaymentService_CancelActivePayment_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	userID := uuid.New()
	ctx := deliverycontext.WithPrincipal(context.Background(), &entity.TokenPayload{Subject: userID})
	active := newCompletedPayment(userID, "pi_1")
	cancelled := *active
	cancelled.Status = entity.PaymentStatusCancelled

	fx.ledger.EXPECT().FindActiveForUser(ctx, userID).Return(active, nil)
	fx.ledger.EXPECT().Cancel(ctx, "pi_1").Return(&usecase.LedgerTransition{
		Payment:        &cancelled,
		PreviousStatus: entity.PaymentStatusCompleted,
	}, nil)
	fx.publisher.EXPECT().
		PublishPaymentEvent(ctx, mock.MatchedBy(func(event *service.PaymentEvent) bool {
			return event.ExternalPaymentID == "pi_1" &&
				event.PreviousStatus == "completed" &&
				event.Status == "cancelled" &&
				event.TriggeredBy == userID.String()
		})).
		Return(nil)

	payment, err := fx.service.CancelActivePayment(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCancelled, payment.Status)
}

func TestPaymentService_CancelActivePayment_PublishFailureIsLoggedOnly(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	active := newCompletedPayment(userID, "pi_1")
	cancelled := *active
	cancelled.Status = entity.PaymentStatusCancelled

	fx.ledger.EXPECT().FindActiveForUser(ctx, userID).Return(active, nil)
	fx.ledger.EXPECT().Cancel(ctx, "pi_1").Return(&usecase.LedgerTransition{Payment: &cancelled}, nil)
	fx.publisher.EXPECT().PublishPaymentEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	payment, err := fx.service.CancelActivePayment(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCancelled, payment.Status)
}

func TestPaymentService_CancelActivePayment_NothingToCancel(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.ledger.EXPECT().FindActiveForUser(ctx, userID).Return(nil, nil)

	_, err := fx.service.CancelActivePayment(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}

func TestPaymentService_GetActivePayment(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	active := newCompletedPayment(userID, "pi_1")

	fx.ledger.EXPECT().FindActiveForUser(ctx, userID).Return(active, nil)

	payment, err := fx.service.GetActivePayment(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, active, payment)
}

func TestAdminService_ListUsers(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	srv := NewAdminService(AdminServiceParams{UserRepo: userRepo, PaymentRepo: paymentRepo})

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New(), Email: "ada@example.com", FullName: "Ada", RoleName: entity.RoleNameAdmin, PasswordHash: "secret"},
		{ID: uuid.New(), Email: "bob@example.com", FullName: "Bob", RoleName: entity.RoleNameUser, PasswordHash: "secret"},
	}
	userRepo.EXPECT().List(ctx).Return(users, nil)
	paymentRepo.EXPECT().List(ctx).Return([]*entity.Payment{newCompletedPayment(users[1].ID, "pi_1")}, nil)

	views, err := srv.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "ada@example.com", views[0].Email)
	assert.Equal(t, entity.RoleNameAdmin, views[0].Role)

	payments, err := srv.ListPayments(ctx)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}
