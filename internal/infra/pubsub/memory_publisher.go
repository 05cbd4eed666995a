package pubsub

import (
	"context"
	"log/slog"
	"time"

	"billing/internal/domain/service"

	"github.com/pkg/errors"
	gcpubsub "gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

// MemoryPublisher keeps events in an in-process topic, for tests and single-node setups.
type MemoryPublisher struct {
	topicURL string
	topic    *gcpubsub.Topic
	logger   *slog.Logger
}

// NewMemoryPublisher opens the topic at a mem:// URL. Publishers opened at the
// same URL share one topic.
func NewMemoryPublisher(ctx context.Context, topicURL string, logger *slog.Logger) (*MemoryPublisher, error) {
	topic, err := gcpubsub.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", topicURL)
	}

	return &MemoryPublisher{
		topicURL: topicURL,
		topic:    topic,
		logger:   logger,
	}, nil
}

// Subscribe attaches a new subscription to the topic. Messages sent before the
// subscription exists are not delivered to it.
func (p *MemoryPublisher) Subscribe(ackDeadline time.Duration) *gcpubsub.Subscription {
	return mempubsub.NewSubscription(p.topic, ackDeadline)
}

// TopicURL is the URL the topic was opened at.
func (p *MemoryPublisher) TopicURL() string {
	return p.topicURL
}

// PublishPaymentEvent sends the event to every subscription of the topic.
func (p *MemoryPublisher) PublishPaymentEvent(ctx context.Context, event *service.PaymentEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	if err := p.topic.Send(ctx, &gcpubsub.Message{Body: data, Metadata: attributes}); err != nil {
		return errors.Wrap(err, "memory topic send failed")
	}

	p.logger.DebugContext(ctx, "[MemoryPubSub] Payment event published",
		slog.String("payment_id", event.PaymentID),
		slog.String("status", event.Status),
	)

	return nil
}

// Close shuts the topic down.
func (p *MemoryPublisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return errors.WithStack(p.topic.Shutdown(ctx))
}
