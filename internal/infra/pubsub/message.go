package pubsub

import (
	"encoding/json"

	"billing/internal/domain/service"

	"github.com/pkg/errors"
)

// encodeEvent serialises the event and builds the attributes every provider attaches.
func encodeEvent(event *service.PaymentEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"payment_id":          event.PaymentID,
		"external_payment_id": event.ExternalPaymentID,
		"status":              event.Status,
		"triggered_by":        event.TriggeredBy,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}
