package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// ActivityQueue is the durable queue every domain event is routed to.
const ActivityQueue = "fyyur.activity"

// Publisher sends events to RabbitMQ.  Each call opens its own connection
// so a broker outage never leaves a broken channel behind.  Errors are
// logged and returned so callers can choose to ignore them.
type Publisher struct {
	url string
}

// NewPublisher returns a Publisher for the broker at url.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// Publish marshals ev and publishes it as a persistent message to
// ActivityQueue through the default exchange.
func (p *Publisher) Publish(ctx context.Context, ev Event) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Warn().Err(err).Str("event", string(ev.Type)).Msg("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	if err := declareActivityQueue(ch); err != nil {
		log.Warn().Err(err).Msg("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ID.String(),
		Type:         string(ev.Type),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", ActivityQueue, false, false, pub); err != nil {
		log.Warn().Err(err).Str("event", string(ev.Type)).Msg("rabbitmq: publish failed")
		return err
	}
	return nil
}

// NopPublisher discards every event.  It is used when events are disabled.
type NopPublisher struct{}

// Publish implements the publisher contract and always succeeds.
func (NopPublisher) Publish(context.Context, Event) error { return nil }

func declareActivityQueue(ch *amqp.Channel) error {
	_, err := ch.QueueDeclare(
		ActivityQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	return err
}
