package stripe

import (
	"encoding/json"

	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/errors"

	stripesdk "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Stripe event types consumed by the reconciler.
const (
	eventCheckoutSessionCompleted   = "checkout.session.completed"
	eventPaymentIntentSucceeded     = "payment_intent.succeeded"
	eventPaymentIntentPaymentFailed = "payment_intent.payment_failed"
	defaultCurrency                 = "usd"
)

// VerifySignedEvent checks the Stripe-Signature header over the raw body and maps the event.
func (g *gateway) VerifySignedEvent(rawBody []byte, signatureHeader string) (*entity.GatewayEvent, error) {
	if signatureHeader == "" {
		return nil, domainerrors.ErrMissingSignature
	}
	if g.webhookSecret == "" {
		return nil, domainerrors.ErrInvalidSignature.WrapMessage("webhook secret not configured")
	}

	event, err := webhook.ConstructEventWithOptions(rawBody, signatureHeader, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, domainerrors.ErrInvalidSignature.WrapMessage(err.Error())
	}

	return decodeEvent(event, rawBody)
}

func decodeEvent(event stripesdk.Event, rawBody []byte) (*entity.GatewayEvent, error) {
	out := &entity.GatewayEvent{
		ID:      event.ID,
		Type:    string(event.Type),
		Kind:    entity.EventKindUnknown,
		Payload: rawBody,
	}
	if event.Data == nil {
		return out, nil
	}

	switch string(event.Type) {
	case eventCheckoutSessionCompleted:
		var session stripesdk.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, errors.Wrap(err, "failed to decode checkout session")
		}

		completion := &entity.CheckoutCompletion{
			SessionID:   session.ID,
			AmountTotal: session.AmountTotal,
			Currency:    string(session.Currency),
		}
		if session.PaymentIntent != nil {
			completion.ExternalPaymentID = session.PaymentIntent.ID
		}
		if session.Customer != nil {
			completion.CustomerRef = session.Customer.ID
		}
		if completion.Currency == "" {
			completion.Currency = defaultCurrency
		}

		out.Kind = entity.EventKindCheckoutCompleted
		out.Checkout = completion

	case eventPaymentIntentSucceeded, eventPaymentIntentPaymentFailed:
		var intent stripesdk.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return nil, errors.Wrap(err, "failed to decode payment intent")
		}

		outcome := &entity.PaymentOutcome{ExternalPaymentID: intent.ID}
		if intent.LastPaymentError != nil {
			outcome.FailureMessage = intent.LastPaymentError.Msg
		}

		out.Kind = entity.EventKindPaymentSucceeded
		if string(event.Type) == eventPaymentIntentPaymentFailed {
			out.Kind = entity.EventKindPaymentFailed
		}
		out.Payment = outcome
	}

	return out, nil
}
