package entity

// EventKind is the processor-independent kind of an inbound payment event.
type EventKind string

const (
	EventKindCheckoutCompleted EventKind = "checkout_completed"
	EventKindPaymentSucceeded  EventKind = "payment_succeeded"
	EventKindPaymentFailed     EventKind = "payment_failed"
	EventKindUnknown           EventKind = "unknown"
)

// GatewayEvent is a verified event from the payment processor, already decoded
// into the fields the reconciler needs.
type GatewayEvent struct {
	ID       string    // Processor event id.
	Type     string    // Processor event type, kept for logs.
	Kind     EventKind // Mapped kind that drives the state machine.
	Payload  []byte    // Raw verified body, journaled for audit.
	Checkout *CheckoutCompletion
	Payment  *PaymentOutcome
}

// CheckoutCompletion is the payload of a checkout-completed event.
type CheckoutCompletion struct {
	SessionID         string
	ExternalPaymentID string
	CustomerRef       string
	AmountTotal       int64
	Currency          string
}

// PaymentOutcome is the payload of a payment-succeeded or payment-failed event.
type PaymentOutcome struct {
	ExternalPaymentID string
	FailureMessage    string
}
