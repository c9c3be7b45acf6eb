package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/application/usecases/commands"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kitchen"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/menu"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/order"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/services"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fixedNow is Monday 2025-03-10 10:00 UTC; all handler tests run against it.
var fixedNow = time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)

func newAdmission() *services.AdmissionService {
	return services.NewAdmissionService(36, time.UTC, func() time.Time { return fixedNow })
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustDate(t *testing.T, year int, month time.Month, day int) kernel.DeliveryDate {
	t.Helper()
	date, err := kernel.NewDeliveryDate(year, month, day)
	require.NoError(t, err)
	return date
}

func mustKitchen(t *testing.T, id kernel.UUID, maxCapacity int, minPrepTimeHours float64) *kitchen.Kitchen {
	t.Helper()
	k, err := kitchen.NewKitchen(id, "Test Kitchen", maxCapacity, minPrepTimeHours)
	require.NoError(t, err)
	return k
}

func mustItems(t *testing.T, kitchenID kernel.UUID, prepMinutes ...int) []*menu.Item {
	t.Helper()
	items := make([]*menu.Item, 0, len(prepMinutes))
	for _, minutes := range prepMinutes {
		item, err := menu.NewItem(kernel.NewUUID(), kitchenID, "Dish", minutes)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func itemIDs(items []*menu.Item) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID())
	}
	return ids
}

type MockKitchenRepository struct{ mock.Mock }

func (m *MockKitchenRepository) Add(ctx context.Context, aggregate *kitchen.Kitchen) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockKitchenRepository) Get(ctx context.Context, id kernel.UUID) (*kitchen.Kitchen, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kitchen.Kitchen), args.Error(1)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *menu.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Item), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountActive(
	ctx context.Context, kitchenID kernel.UUID, date kernel.DeliveryDate, slot kernel.TimeSlot,
) (int, error) {
	args := m.Called(ctx, kitchenID, date, slot)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByKitchen(
	ctx context.Context, kitchenID kernel.UUID, date kernel.DeliveryDate,
) ([]*order.Order, error) {
	args := m.Called(ctx, kitchenID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetStalePending(ctx context.Context, olderThan time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockNotificationPublisher struct{ mock.Mock }

func (m *MockNotificationPublisher) Notify(ctx context.Context, notification ports.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type MockRevenueRecorder struct{ mock.Mock }

func (m *MockRevenueRecorder) Capture(ctx context.Context, orderID, kitchenID kernel.UUID) error {
	args := m.Called(ctx, orderID, kitchenID)
	return args.Error(0)
}

type MockAdmissionUoW struct{ mock.Mock }

func (m *MockAdmissionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAdmissionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAdmissionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAdmissionUoW) LockKitchen(ctx context.Context, kitchenID kernel.UUID) error {
	args := m.Called(ctx, kitchenID)
	return args.Error(0)
}

func (m *MockAdmissionUoW) KitchenRepository() ports.KitchenRepository {
	args := m.Called()
	return args.Get(0).(ports.KitchenRepository)
}

func (m *MockAdmissionUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

func (m *MockAdmissionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockAdmissionUoWFactory struct{ mock.Mock }

func (m *MockAdmissionUoWFactory) Create() commands.AdmissionUoW {
	args := m.Called()
	return args.Get(0).(commands.AdmissionUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}
