package usecase

import "context"

// WebhookResult is the acknowledgement returned to the processor.
type WebhookResult struct {
	Received  bool
	Duplicate bool
	Error     string
}

// WebhookUsecase is the event reconciler. It only returns an error when the
// delivery could not be authenticated; everything after verification is acknowledged.
type WebhookUsecase interface {
	HandleWebhook(ctx context.Context, rawBody []byte, signature string) (*WebhookResult, error)
}
