package impl

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/domain/service"

	"github.com/google/uuid"
)

// memStore is an in-process stand-in for the postgres repositories with the
// same uniqueness and conditional-update rules.
type memStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*entity.User
	roles    map[string]*entity.Role
	payments map[string]*entity.Payment
	events   map[string]*entity.WebhookEvent
}

func newMemStore() *memStore {
	store := &memStore{
		users:    map[uuid.UUID]*entity.User{},
		roles:    map[string]*entity.Role{},
		payments: map[string]*entity.Payment{},
		events:   map[string]*entity.WebhookEvent{},
	}
	for _, role := range entity.DefaultRoles() {
		role.ID = uuid.New()
		store.roles[role.Name] = role
	}

	return store
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memStore) NewUserRepository() repository.UserRepository { return (*memUsers)(s) }

func (s *memStore) NewRoleRepository() repository.RoleRepository { return (*memRoles)(s) }

func (s *memStore) NewPaymentRepository() repository.PaymentRepository { return (*memPayments)(s) }

func (s *memStore) NewWebhookEventRepository() repository.WebhookEventRepository {
	return (*memEvents)(s)
}

type memUsers memStore

func (s *memUsers) find(match func(*entity.User) bool) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if match(user) {
			found := *user

			return &found, nil
		}
	}

	return nil, domainerrors.ErrUserNotFound
}

func (s *memUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return s.find(func(u *entity.User) bool { return u.ID == id })
}

func (s *memUsers) FindByIDFromPrimary(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.FindByID(ctx, id)
}

func (s *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return s.find(func(u *entity.User) bool { return u.Email == email })
}

func (s *memUsers) FindByCustomerID(_ context.Context, customerID string) (*entity.User, error) {
	return s.find(func(u *entity.User) bool {
		return u.ProcessorCustomerID != nil && *u.ProcessorCustomerID == customerID
	})
}

func (s *memUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.FindByEmail(ctx, email)

	return err == nil, nil
}

func (s *memUsers) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	stored := *user
	s.users[user.ID] = &stored

	return nil
}

func (s *memUsers) SetRefreshTokenHash(_ context.Context, id uuid.UUID, hash *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return domainerrors.ErrUserNotFound
	}
	user.RefreshTokenHash = hash

	return nil
}

func (s *memUsers) SwapRefreshTokenHash(_ context.Context, id uuid.UUID, oldHash, newHash string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok || user.RefreshTokenHash == nil || *user.RefreshTokenHash != oldHash {
		return false, nil
	}
	user.RefreshTokenHash = &newHash

	return true, nil
}

func (s *memUsers) List(_ context.Context) ([]*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*entity.User, 0, len(s.users))
	for _, user := range s.users {
		listed := *user
		users = append(users, &listed)
	}

	return users, nil
}

type memRoles memStore

func (s *memRoles) FindByName(_ context.Context, name string) (*entity.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	role, ok := s.roles[name]
	if !ok {
		return nil, domainerrors.ErrRoleMissing
	}

	return role, nil
}

func (s *memRoles) EnsureRole(_ context.Context, role *entity.Role) (*entity.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.roles[role.Name]; ok {
		return existing, nil
	}
	role.ID = uuid.New()
	s.roles[role.Name] = role

	return role, nil
}

type memPayments memStore

func (s *memPayments) CreateIfAbsent(_ context.Context, payment *entity.Payment) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.payments[payment.ExternalPaymentID]; ok {
		return false, nil
	}
	if payment.Status == entity.PaymentStatusCompleted {
		for _, existing := range s.payments {
			if existing.UserID == payment.UserID && existing.Status == entity.PaymentStatusCompleted {
				return false, domainerrors.ErrActivePaymentExists
			}
		}
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	stored := *payment
	s.payments[payment.ExternalPaymentID] = &stored

	return true, nil
}

func (s *memPayments) FindByExternalID(_ context.Context, externalID string) (*entity.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, ok := s.payments[externalID]
	if !ok {
		return nil, domainerrors.ErrPaymentNotFound
	}
	found := *payment

	return &found, nil
}

func (s *memPayments) FindLatestByStatus(_ context.Context, userID uuid.UUID, status entity.PaymentStatus) (*entity.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *entity.Payment
	for _, payment := range s.payments {
		if payment.UserID != userID || payment.Status != status {
			continue
		}
		if latest == nil || (payment.PaidAt != nil && (latest.PaidAt == nil || payment.PaidAt.After(*latest.PaidAt))) {
			latest = payment
		}
	}
	if latest == nil {
		return nil, domainerrors.ErrPaymentNotFound
	}
	found := *latest

	return &found, nil
}

func (s *memPayments) ExistsByStatus(ctx context.Context, userID uuid.UUID, status entity.PaymentStatus) (bool, error) {
	_, err := s.FindLatestByStatus(ctx, userID, status)

	return err == nil, nil
}

func (s *memPayments) UpdateStatus(
	_ context.Context,
	externalID string,
	status entity.PaymentStatus,
	from []entity.PaymentStatus,
	update entity.PaymentUpdate,
) (*entity.Payment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, ok := s.payments[externalID]
	if !ok || !slices.Contains(from, payment.Status) {
		return nil, false, nil
	}
	payment.Status = status
	if update.PaidAt != nil {
		payment.PaidAt = update.PaidAt
	}
	if update.CancelledAt != nil {
		payment.CancelledAt = update.CancelledAt
	}
	for key, value := range update.Metadata {
		if payment.Metadata == nil {
			payment.Metadata = map[string]string{}
		}
		payment.Metadata[key] = value
	}
	updated := *payment

	return &updated, true, nil
}

func (s *memPayments) List(_ context.Context) ([]*entity.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payments := make([]*entity.Payment, 0, len(s.payments))
	for _, payment := range s.payments {
		listed := *payment
		payments = append(payments, &listed)
	}

	return payments, nil
}

type memEvents memStore

func (s *memEvents) Record(_ context.Context, event *entity.WebhookEvent) (*entity.WebhookEvent, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := event.Provider + "/" + event.ProviderEventID
	if existing, ok := s.events[key]; ok {
		stored := *existing

		return &stored, false, nil
	}
	event.ID = uuid.New()
	stored := *event
	s.events[key] = &stored

	return event, true, nil
}

func (s *memEvents) MarkProcessed(_ context.Context, provider, providerEventID, processingError string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[provider+"/"+providerEventID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	now := time.Now()
	event.ProcessedAt = &now
	event.ProcessingError = processingError

	return nil
}

const fakeValidSignature = "t=1,v1=valid"

// fakeGateway plays the processor: events are registered by body and only
// accepted with fakeValidSignature.
type fakeGateway struct {
	mu        sync.Mutex
	customers int
	sessions  int
	lineItems map[string][]service.LineItem
	events    map[string]*entity.GatewayEvent

	// stallCustomers makes CreateCustomer hang until the caller's deadline.
	stallCustomers bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		lineItems: map[string][]service.LineItem{},
		events:    map[string]*entity.GatewayEvent{},
	}
}

// deliver registers the event and returns the body the processor would send.
func (g *fakeGateway) deliver(event *entity.GatewayEvent) []byte {
	g.mu.Lock()
	defer g.mu.Unlock()

	body := []byte(fmt.Sprintf(`{"id":%q,"type":%q}`, event.ID, event.Type))
	event.Payload = body
	g.events[string(body)] = event

	return body
}

func (g *fakeGateway) CreateCustomer(ctx context.Context, _, _ string) (*service.CustomerRef, error) {
	g.mu.Lock()
	stall := g.stallCustomers
	g.mu.Unlock()

	if stall {
		<-ctx.Done()

		return nil, ctx.Err()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.customers++

	return &service.CustomerRef{ID: fmt.Sprintf("cus_%d", g.customers)}, nil
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, priceID, _, _, _ string) (*service.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sessions++
	id := fmt.Sprintf("cs_%d", g.sessions)
	g.lineItems[id] = []service.LineItem{{PriceID: priceID, ProductID: "prod_" + priceID}}

	return &service.CheckoutSession{ID: id, URL: "https://checkout.example.com/" + id}, nil
}

func (g *fakeGateway) ListCheckoutLineItems(_ context.Context, sessionID string) ([]service.LineItem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.lineItems[sessionID], nil
}

func (g *fakeGateway) VerifySignedEvent(rawBody []byte, signatureHeader string) (*entity.GatewayEvent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	event, ok := g.events[string(rawBody)]
	if signatureHeader != fakeValidSignature || !ok {
		return nil, domainerrors.ErrInvalidSignature
	}

	return event, nil
}

func (g *fakeGateway) Provider() string {
	return "stripe"
}
