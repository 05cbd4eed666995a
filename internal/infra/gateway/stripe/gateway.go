// Package stripe adapts the Stripe API to the domain's PaymentGateway.
package stripe

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"billing/config"
	"billing/internal/domain/constants"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/service"
	"billing/internal/errors"

	stripesdk "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

type gateway struct {
	api           *client.API
	webhookSecret string
	timeout       time.Duration
	logger        *slog.Logger
}

// NewGateway builds the Stripe client with an HTTP client bounded by stripe.timeout.
func NewGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe.secretKey must be provided")
	}
	if cfg.Stripe.WebhookSecret == "" {
		logger.Warn("stripe.webhookSecret is empty, every webhook delivery will be rejected")
	}

	timeout := cfg.Stripe.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	backends := stripesdk.NewBackends(&http.Client{Timeout: timeout})

	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, backends)

	return newGateway(api, cfg.Stripe.WebhookSecret, timeout, logger), nil
}

func newGateway(api *client.API, webhookSecret string, timeout time.Duration, logger *slog.Logger) *gateway {
	return &gateway{
		api:           api,
		webhookSecret: webhookSecret,
		timeout:       timeout,
		logger:        logger.With(slog.String("component", "stripe")),
	}
}

// Provider names the processor in the webhook journal.
func (g *gateway) Provider() string {
	return constants.ProviderStripe
}

// CreateCustomer registers the user at Stripe.
func (g *gateway) CreateCustomer(ctx context.Context, email, name string) (*service.CustomerRef, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripesdk.CustomerParams{
		Email: stripesdk.String(email),
		Name:  stripesdk.String(name),
	}
	params.Context = ctx

	customer, err := g.api.Customers.New(params)
	if err != nil {
		return nil, g.failure(ctx, err, "create customer")
	}

	return &service.CustomerRef{ID: customer.ID}, nil
}

// CreateCheckoutSession opens a one-time payment checkout for a single price.
func (g *gateway) CreateCheckoutSession(ctx context.Context, priceID, customerRef, successURL, cancelURL string) (*service.CheckoutSession, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripesdk.CheckoutSessionParams{
		Customer: stripesdk.String(customerRef),
		LineItems: []*stripesdk.CheckoutSessionLineItemParams{
			{
				Price:    stripesdk.String(priceID),
				Quantity: stripesdk.Int64(1),
			},
		},
		Mode:       stripesdk.String(string(stripesdk.CheckoutSessionModePayment)),
		SuccessURL: stripesdk.String(successURL),
		CancelURL:  stripesdk.String(cancelURL),
		PaymentIntentData: &stripesdk.CheckoutSessionPaymentIntentDataParams{
			SetupFutureUsage: stripesdk.String(string(stripesdk.PaymentIntentSetupFutureUsageOffSession)),
		},
	}
	params.Context = ctx

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, g.failure(ctx, err, "create checkout session")
	}

	return &service.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// ListCheckoutLineItems returns the price and product of every line of a session.
func (g *gateway) ListCheckoutLineItems(ctx context.Context, sessionID string) ([]service.LineItem, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripesdk.CheckoutSessionListLineItemsParams{
		Session: stripesdk.String(sessionID),
	}
	params.Context = ctx

	var items []service.LineItem
	iter := g.api.CheckoutSessions.ListLineItems(params)
	for iter.Next() {
		line := iter.LineItem()
		if line.Price == nil {
			continue
		}

		item := service.LineItem{PriceID: line.Price.ID}
		if line.Price.Product != nil {
			item.ProductID = line.Price.Product.ID
		}
		items = append(items, item)
	}
	if err := iter.Err(); err != nil {
		return nil, g.failure(ctx, err, "list checkout line items")
	}

	return items, nil
}

func (g *gateway) failure(ctx context.Context, err error, op string) error {
	attrs := []slog.Attr{
		slog.String("operation", op),
		slog.String("error", err.Error()),
	}

	var stripeErr *stripesdk.Error
	if errors.As(err, &stripeErr) {
		attrs = append(attrs,
			slog.String("stripeCode", string(stripeErr.Code)),
			slog.String("stripeRequestID", stripeErr.RequestID),
			slog.Int("httpStatus", stripeErr.HTTPStatusCode),
		)
	}
	g.logger.LogAttrs(ctx, slog.LevelError, "Stripe request failed", attrs...)

	return domainerrors.ErrGatewayFailure.WrapMessage(op + ": " + err.Error())
}
