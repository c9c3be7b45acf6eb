// Package rabbitmq publishes notifications to a RabbitMQ topic exchange.
// Delivery is fire-and-forget from the engine's point of view: callers log a
// failed publish and move on, they never roll back the state change behind it.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeName is the topic exchange notifications are published to.
// Routing keys follow "notification.<audience>.<kind>", so a kitchen app
// binds "notification.kitchen.#" and a customer app "notification.customer.#".
const ExchangeName = "notifications_topic"

// Connection is the subset of the AMQP connection the publisher needs.
type Connection interface {
	Channel() (Channel, error)
	Close() error
	IsClosed() bool
}

// Channel is the subset of the AMQP channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type amqpConnection struct {
	conn *amqp.Connection
}

// Connect dials the broker at the given AMQP URL.
func Connect(url string) (Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	return &amqpConnection{conn: conn}, nil
}

func (c *amqpConnection) Channel() (Channel, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return ch, nil
}

func (c *amqpConnection) Close() error {
	if !c.conn.IsClosed() {
		return c.conn.Close()
	}
	return nil
}

func (c *amqpConnection) IsClosed() bool {
	return c.conn.IsClosed()
}

// Publisher implements ports.NotificationPublisher over a topic exchange.
type Publisher struct {
	conn Connection
}

// NewPublisher creates a notification publisher on the given connection.
func NewPublisher(conn Connection) *Publisher {
	return &Publisher{conn: conn}
}

// Notify publishes the notification as a persistent JSON message.
// The exchange is declared on every publish; declaration is idempotent and
// keeps the publisher working against a freshly started broker.
func (p *Publisher) Notify(ctx context.Context, notification ports.Notification) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	routingKey := fmt.Sprintf("notification.%s.%s", notification.Audience, notification.Kind)

	err = ch.PublishWithContext(ctx, ExchangeName, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}
