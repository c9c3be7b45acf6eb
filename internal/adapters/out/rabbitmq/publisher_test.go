package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/adapters/out/rabbitmq"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct{ mock.Mock }

func (m *MockChannel) ExchangeDeclare(
	name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table,
) error {
	callArgs := m.Called(name, kind, durable, autoDelete, internal, noWait, args)
	return callArgs.Error(0)
}

func (m *MockChannel) PublishWithContext(
	ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing,
) error {
	callArgs := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return callArgs.Error(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

type MockConnection struct{ mock.Mock }

func (m *MockConnection) Channel() (rabbitmq.Channel, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(rabbitmq.Channel), args.Error(1)
}

func (m *MockConnection) Close() error {
	return m.Called().Error(0)
}

func (m *MockConnection) IsClosed() bool {
	return m.Called().Bool(0)
}

func testNotification() ports.Notification {
	return ports.Notification{
		TargetID:   "9f2cfe1e-3f7a-4b39-8f31-8f2ddc2c6a55",
		Audience:   ports.AudienceKitchen,
		Kind:       ports.NotificationOrderReceived,
		Title:      "New order received",
		Message:    "Order awaiting confirmation",
		OccurredAt: time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_Notify_RoutingKeyAndBody(t *testing.T) {
	notification := testNotification()

	ch := new(MockChannel)
	ch.On("ExchangeDeclare", rabbitmq.ExchangeName, "topic", true, false, false, false, amqp.Table(nil)).
		Return(nil).Once()
	ch.On("PublishWithContext",
		mock.Anything, rabbitmq.ExchangeName, "notification.kitchen.order_received", false, false,
		mock.MatchedBy(func(msg amqp.Publishing) bool {
			var decoded ports.Notification
			if err := json.Unmarshal(msg.Body, &decoded); err != nil {
				return false
			}
			return msg.ContentType == "application/json" &&
				msg.DeliveryMode == amqp.Persistent &&
				decoded.TargetID == notification.TargetID &&
				decoded.Audience == notification.Audience &&
				decoded.Kind == notification.Kind &&
				decoded.OccurredAt.Equal(notification.OccurredAt)
		})).Return(nil).Once()
	ch.On("Close").Return(nil).Once()

	conn := new(MockConnection)
	conn.On("Channel").Return(ch, nil).Once()

	publisher := rabbitmq.NewPublisher(conn)
	err := publisher.Notify(t.Context(), notification)
	require.NoError(t, err)
	ch.AssertExpectations(t)
	conn.AssertExpectations(t)
}

func TestPublisher_Notify_ChannelError(t *testing.T) {
	conn := new(MockConnection)
	conn.On("Channel").Return(nil, errors.New("connection gone")).Once()

	publisher := rabbitmq.NewPublisher(conn)
	err := publisher.Notify(t.Context(), testNotification())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open channel")
}

func TestPublisher_Notify_PublishError(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker refused")).Once()
	ch.On("Close").Return(nil).Once()

	conn := new(MockConnection)
	conn.On("Channel").Return(ch, nil).Once()

	publisher := rabbitmq.NewPublisher(conn)
	err := publisher.Notify(t.Context(), testNotification())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish")
}
