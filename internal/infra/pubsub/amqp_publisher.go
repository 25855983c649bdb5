package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"recyclemart/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpPublisher implements EventPublisher on a RabbitMQ topic exchange.
// Routing keys are "orders.<type>", e.g. "orders.order_created".
type amqpPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

// NewAMQPPublisher dials the broker and declares a durable topic exchange
func NewAMQPPublisher(url, exchange string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial amqp broker")
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open amqp channel")
	}

	if err := channel.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	logger.Info("AMQP publisher initialized", slog.String("exchange", exchange))

	return &amqpPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// PublishOrderEvent publishes a persistent JSON message to the exchange
func (p *amqpPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	encoded, err := encodeEvent(event)
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	for key, value := range encoded.attributes {
		headers[key] = value
	}

	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		Timestamp:     encoded.occurredAt,
		CorrelationId: event.RequestID,
		Headers:       headers,
		Body:          encoded.body,
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx, p.exchange, routingKey(event), false, false, msg); err != nil {
		return errors.Wrap(err, "failed to publish amqp message")
	}

	logPublished(ctx, p.logger, "amqp", event, slog.String("routing_key", routingKey(event)))

	return nil
}

// Close closes the channel and the connection
func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}

func routingKey(event *service.OrderEvent) string {
	return "orders." + event.Type
}
