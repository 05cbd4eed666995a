package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"billing/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitDialTimeout bounds the TCP connect and AMQP handshake. Publishing runs on the
// webhook acknowledgement path, so a dead broker must fail fast.
const rabbitDialTimeout = 2 * time.Second

// rabbitMQPublisher publishes persistent messages to a durable queue through the default exchange.
// The connection is opened lazily and reopened after the broker drops it.
type rabbitMQPublisher struct {
	url         string
	queue       string
	dialTimeout time.Duration
	logger      *slog.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewRabbitMQPublisher creates a publisher for the queue.
func NewRabbitMQPublisher(url, queue string, logger *slog.Logger) service.EventPublisher {
	return &rabbitMQPublisher{
		url:         url,
		queue:       queue,
		dialTimeout: rabbitDialTimeout,
		logger:      logger,
	}
}

// PublishPaymentEvent declares the queue if needed and publishes the event.
func (p *rabbitMQPublisher) PublishPaymentEvent(ctx context.Context, event *service.PaymentEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	for k, v := range attributes {
		headers[k] = v
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channelLocked()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			Timestamp:     time.Now().UTC(),
			CorrelationId: event.RequestID,
			Headers:       headers,
			Body:          data,
		},
	)
	if err != nil {
		p.resetLocked()

		return errors.Wrap(err, "rabbitmq publish failed")
	}

	p.logger.InfoContext(ctx, "[RabbitMQ] Payment event published",
		slog.String("queue", p.queue),
		slog.String("payment_id", event.PaymentID),
		slog.String("status", event.Status),
	)

	return nil
}

func (p *rabbitMQPublisher) channelLocked() (*amqp.Channel, error) {
	if p.channel != nil && !p.channel.IsClosed() {
		return p.channel, nil
	}
	p.resetLocked()

	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.dialTimeout),
	})
	if err != nil {
		return nil, errors.Wrap(err, "rabbitmq dial failed")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "rabbitmq channel open failed")
	}

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrap(err, "rabbitmq queue declare failed")
	}

	p.conn, p.channel = conn, ch

	return ch, nil
}

func (p *rabbitMQPublisher) resetLocked() {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// Close closes the channel and connection.
func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.resetLocked()

	return nil
}
