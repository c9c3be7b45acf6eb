package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/application/usecases/commands"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/order"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifyStalePendingCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.NotifyStalePendingCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrNotifyStalePendingCommandIsNotConstructed)
}

func TestNotifyStalePendingCommandHandler_Handle_NotifiesEachKitchen(t *testing.T) {
	ctx := t.Context()
	first := restoredOrder(t, order.Pending, 1)
	second := restoredOrder(t, order.Pending, 1)
	cutoff := fixedNow.Add(-30 * time.Minute)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo)
	repo.On("GetStalePending", ctx, cutoff).Return([]*order.Order{first, second}, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)
	for _, aggregate := range []*order.Order{first, second} {
		kitchenID := aggregate.KitchenID().String()
		publisher.On("Notify", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
			return n.Kind == ports.NotificationStalePending &&
				n.Audience == ports.AudienceKitchen &&
				n.TargetID == kitchenID
		})).Return(nil).Once()
	}

	h := commands.NewNotifyStalePendingCommandHandler(
		factory, publisher, 30*time.Minute, func() time.Time { return fixedNow }, discardLogger(),
	)
	err := h.Handle(ctx, commands.NewNotifyStalePendingCommand())
	require.NoError(t, err)
	publisher.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestNotifyStalePendingCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cutoff := fixedNow.Add(-30 * time.Minute)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo)
	repo.On("GetStalePending", ctx, cutoff).Return([]*order.Order{}, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)

	h := commands.NewNotifyStalePendingCommandHandler(
		factory, publisher, 30*time.Minute, func() time.Time { return fixedNow }, discardLogger(),
	)
	err := h.Handle(ctx, commands.NewNotifyStalePendingCommand())
	require.NoError(t, err)
	publisher.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestNotifyStalePendingCommandHandler_Handle_PublishFailureDoesNotStopSweep(t *testing.T) {
	ctx := t.Context()
	first := restoredOrder(t, order.Pending, 1)
	second := restoredOrder(t, order.Pending, 1)
	cutoff := fixedNow.Add(-time.Hour)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo)
	repo.On("GetStalePending", ctx, cutoff).Return([]*order.Order{first, second}, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)
	publisher.On("Notify", mock.Anything, mock.Anything).Return(errors.New("broker down")).Twice()

	h := commands.NewNotifyStalePendingCommandHandler(
		factory, publisher, time.Hour, func() time.Time { return fixedNow }, discardLogger(),
	)
	err := h.Handle(ctx, commands.NewNotifyStalePendingCommand())
	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestNotifyStalePendingCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cutoff := fixedNow.Add(-30 * time.Minute)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo)
	repo.On("GetStalePending", ctx, cutoff).Return(nil, errors.New("query failed")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewNotifyStalePendingCommandHandler(
		factory, new(MockNotificationPublisher), 30*time.Minute, func() time.Time { return fixedNow }, discardLogger(),
	)
	err := h.Handle(ctx, commands.NewNotifyStalePendingCommand())
	require.Error(t, err)
	assert.EqualError(t, err, "query failed")
}
