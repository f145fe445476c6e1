package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Queue names for rental lifecycle events.
const (
	QueueRentalCheckedOut = "rental.checked_out"
	QueueRentalReturned   = "rental.returned"
)

// EventPublisher publishes domain events to RabbitMQ. Publishing is
// strictly best-effort: each failure is logged and returned, and the
// rental workflow ignores it so a broker outage never fails a
// committed checkout or return. A nil publisher (no broker URL
// configured) disables publishing entirely.
type EventPublisher struct {
	url string
}

// NewEventPublisher returns a publisher for the given AMQP URL, or
// nil when the URL is empty.
func NewEventPublisher(url string) *EventPublisher {
	if url == "" {
		return nil
	}
	return &EventPublisher{url: url}
}

// Publish marshals the event and sends it to the named queue,
// declaring the queue first so publishing is order-independent with
// consumers. Messages are marked persistent.
func (p *EventPublisher) Publish(ctx context.Context, queueName string, event any) error {
	if p == nil {
		return nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Warn().Err(err).Str("queue", queueName).Msg("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Warn().Err(err).Str("queue", queueName).Msg("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Warn().Err(err).Str("queue", queueName).Msg("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Warn().Err(err).Str("queue", queueName).Msg("rabbitmq: marshal event failed")
		return err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = ch.PublishWithContext(pubCtx, "", queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Warn().Err(err).Str("queue", queueName).Msg("rabbitmq: publish failed")
	}
	return err
}
