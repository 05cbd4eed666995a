// Package constants contains identifiers shared across layers.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Payment event publisher providers.
const (
	PubSubProviderNoop     = "noop"
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
	PubSubProviderMemory   = "memory"
)

// ProviderStripe namespaces Stripe deliveries in the webhook journal.
const ProviderStripe = "stripe"

// HeaderStripeSignature carries the webhook signature.
const HeaderStripeSignature = "Stripe-Signature"
