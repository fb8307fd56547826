package common

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Exchange string

type Queue string

type BindingKey string

type MessageProducer interface {
	Publish(ctx context.Context, msg []byte, key BindingKey, exchange Exchange) error
}

type MessageConsumer interface {
	Consume(key BindingKey, exchange Exchange, queue Queue) (<-chan amqp.Delivery, error)
}

const (
	NewsletterExchange        Exchange   = "newsletter_exchange"
	NewsletterSubscribedQueue Queue      = "newsletter_subscribed_queue"
	NewsletterSubscribedKey   BindingKey = "newsletter.subscribed"

	// Rejected subscriber events end up here for manual inspection.
	NewsletterDeadLetterExchange Exchange = "newsletter_dead_letter_exchange"
	NewsletterDeadLetterQueue    Queue    = "newsletter_dead_letter_queue"
)

type MessageBroker struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewMessageBroker(URI string) (*MessageBroker, error) {
	conn, ch, err := connectAMQP(URI)
	if err != nil {
		return nil, err
	}

	return &MessageBroker{
		conn: conn,
		ch:   ch,
	}, nil
}

func connectAMQP(URI string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(URI)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("could not open channel: %w", err)
	}

	return conn, ch, nil
}

// Close closes the connection and channel of the message broker.
func (mb *MessageBroker) Close() error {
	err := mb.ch.Close()
	if err != nil {
		return err
	}

	err = mb.conn.Close()
	if err != nil {
		return err
	}

	return nil
}

// SetupNewsletterExchange declares the exchanges, queues and bindings used for subscriber
// events. Messages rejected without requeue from the subscribed queue are routed to the
// dead letter queue.
func SetupNewsletterExchange(mb *MessageBroker) error {
	err := mb.ch.ExchangeDeclare(string(NewsletterDeadLetterExchange), "fanout", true, false, false, false, nil)
	if err != nil {
		return err
	}

	_, err = mb.ch.QueueDeclare(string(NewsletterDeadLetterQueue), true, false, false, false, nil)
	if err != nil {
		return err
	}

	err = mb.ch.QueueBind(string(NewsletterDeadLetterQueue), "", string(NewsletterDeadLetterExchange), false, nil)
	if err != nil {
		return err
	}

	err = mb.ch.ExchangeDeclare(string(NewsletterExchange), "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	_, err = mb.ch.QueueDeclare(string(NewsletterSubscribedQueue), true, false, false, false, amqp.Table{
		"x-dead-letter-exchange": string(NewsletterDeadLetterExchange),
	})
	if err != nil {
		return err
	}

	err = mb.ch.QueueBind(string(NewsletterSubscribedQueue), string(NewsletterSubscribedKey), string(NewsletterExchange), false, nil)
	if err != nil {
		return err
	}

	return nil
}

// Publish sends a persistent JSON message. Each message gets a unique id and a timestamp.
func (mb *MessageBroker) Publish(ctx context.Context, msg []byte, key BindingKey, exchange Exchange) error {
	err := mb.ch.PublishWithContext(ctx, string(exchange), string(key), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Type:         string(key),
		Body:         msg,
	})
	if err != nil {
		return fmt.Errorf("could not publish message: %w", err)
	}

	return nil
}

// Consume delivers messages from queue one at a time; each must be acked or nacked
// before the next one arrives. The queue name doubles as the consumer tag.
func (mb *MessageBroker) Consume(key BindingKey, exchange Exchange, queue Queue) (<-chan amqp.Delivery, error) {
	err := mb.ch.Qos(1, 0, false)
	if err != nil {
		return nil, fmt.Errorf("could not set prefetch: %w", err)
	}

	msgs, err := mb.ch.Consume(string(queue), string(queue), false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("could not consume message: %w", err)
	}

	return msgs, nil
}
