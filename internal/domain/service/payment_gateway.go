package service

import (
	"context"

	"billing/internal/domain/entity"
)

// CustomerRef identifies a customer at the payment processor.
type CustomerRef struct {
	ID string
}

// CheckoutSession is a hosted checkout page created at the processor.
type CheckoutSession struct {
	ID  string
	URL string
}

// LineItem is one purchased price of a completed checkout.
type LineItem struct {
	PriceID   string
	ProductID string
}

// PaymentGateway is the only place that talks to the payment processor.
type PaymentGateway interface {
	CreateCustomer(ctx context.Context, email, name string) (*CustomerRef, error)
	CreateCheckoutSession(ctx context.Context, priceID, customerRef, successURL, cancelURL string) (*CheckoutSession, error)
	ListCheckoutLineItems(ctx context.Context, sessionID string) ([]LineItem, error)

	// VerifySignedEvent authenticates the raw body against the signature header and decodes it.
	// Any verification failure returns ErrInvalidSignature.
	VerifySignedEvent(rawBody []byte, signatureHeader string) (*entity.GatewayEvent, error)

	// Provider names the processor, used as the webhook journal namespace.
	Provider() string
}
