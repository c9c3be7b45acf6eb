package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/application/usecases/commands"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/services"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateOrderCommandHandler_Handle_AllChecksPass(t *testing.T) {
	ctx := t.Context()
	kitchenID := kernel.NewUUID()
	items := mustItems(t, kitchenID, 45, 60)
	// 2025-03-12 LUNCH 13:00 is 51 hours after fixedNow.
	date := mustDate(t, 2025, time.March, 12)

	kitchens := new(MockKitchenRepository)
	menuItems := new(MockMenuItemRepository)
	orders := new(MockOrderRepository)
	kitchens.On("Get", ctx, kitchenID).Return(mustKitchen(t, kitchenID, 5, 2), nil).Once()
	orders.On("CountActive", ctx, kitchenID, date, kernel.Lunch).Return(3, nil).Once()
	menuItems.On("GetByIDs", ctx, itemIDs(items)).Return(items, nil).Once()

	h := commands.NewValidateOrderCommandHandler(newAdmission(), kitchens, menuItems, orders)
	cmd, err := commands.NewValidateOrderCommand(kitchenID, itemIDs(items), date, kernel.Lunch)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.NoError(t, result.Rejection)
	kitchens.AssertExpectations(t)
	menuItems.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestValidateOrderCommandHandler_Handle_CapacityFull(t *testing.T) {
	ctx := t.Context()
	kitchenID := kernel.NewUUID()
	items := mustItems(t, kitchenID, 30)
	date := mustDate(t, 2025, time.March, 12)

	kitchens := new(MockKitchenRepository)
	menuItems := new(MockMenuItemRepository)
	orders := new(MockOrderRepository)
	kitchens.On("Get", ctx, kitchenID).Return(mustKitchen(t, kitchenID, 5, 2), nil).Once()
	orders.On("CountActive", ctx, kitchenID, date, kernel.Lunch).Return(5, nil).Once()

	h := commands.NewValidateOrderCommandHandler(newAdmission(), kitchens, menuItems, orders)
	cmd, err := commands.NewValidateOrderCommand(kitchenID, itemIDs(items), date, kernel.Lunch)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, result.Valid)

	var capacityErr *services.CapacityExceededError
	require.ErrorAs(t, result.Rejection, &capacityErr)
	assert.Equal(t, 5, capacityErr.CurrentCount)
	assert.Equal(t, 5, capacityErr.MaxCapacity)

	// Prep time is never consulted once capacity fails.
	menuItems.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestValidateOrderCommandHandler_Handle_TooLateSkipsRepositories(t *testing.T) {
	ctx := t.Context()
	kitchenID := kernel.NewUUID()
	ids := []kernel.UUID{kernel.NewUUID()}
	// Tomorrow's breakfast is only 22 hours away.
	date := mustDate(t, 2025, time.March, 11)

	kitchens := new(MockKitchenRepository)
	menuItems := new(MockMenuItemRepository)
	orders := new(MockOrderRepository)

	h := commands.NewValidateOrderCommandHandler(newAdmission(), kitchens, menuItems, orders)
	cmd, err := commands.NewValidateOrderCommand(kitchenID, ids, date, kernel.Breakfast)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.ErrorIs(t, result.Rejection, services.ErrTimingViolation)

	kitchens.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	orders.AssertNotCalled(t, "CountActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestValidateOrderCommandHandler_Handle_PrepTimeTooLong(t *testing.T) {
	ctx := t.Context()
	kitchenID := kernel.NewUUID()
	// 49 + 3 hours of lead needed, only 51 available.
	items := mustItems(t, kitchenID, 49*60)
	date := mustDate(t, 2025, time.March, 12)

	kitchens := new(MockKitchenRepository)
	menuItems := new(MockMenuItemRepository)
	orders := new(MockOrderRepository)
	kitchens.On("Get", ctx, kitchenID).Return(mustKitchen(t, kitchenID, 5, 3), nil).Once()
	orders.On("CountActive", ctx, kitchenID, date, kernel.Lunch).Return(0, nil).Once()
	menuItems.On("GetByIDs", ctx, itemIDs(items)).Return(items, nil).Once()

	h := commands.NewValidateOrderCommandHandler(newAdmission(), kitchens, menuItems, orders)
	cmd, err := commands.NewValidateOrderCommand(kitchenID, itemIDs(items), date, kernel.Lunch)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.ErrorIs(t, result.Rejection, services.ErrPrepTimeInsufficient)
}

func TestValidateOrderCommandHandler_Handle_UnknownKitchenIsAnError(t *testing.T) {
	ctx := t.Context()
	kitchenID := kernel.NewUUID()
	date := mustDate(t, 2025, time.March, 12)

	kitchens := new(MockKitchenRepository)
	menuItems := new(MockMenuItemRepository)
	orders := new(MockOrderRepository)
	kitchens.On("Get", ctx, kitchenID).
		Return(nil, errs.NewObjectNotFoundError("kitchenID", kitchenID)).Once()

	h := commands.NewValidateOrderCommandHandler(newAdmission(), kitchens, menuItems, orders)
	cmd, err := commands.NewValidateOrderCommand(kitchenID, []kernel.UUID{kernel.NewUUID()}, date, kernel.Lunch)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.False(t, result.Valid)
	assert.NoError(t, result.Rejection)
}

func TestValidateOrderCommandHandler_Handle_RepositoryFailureIsAnError(t *testing.T) {
	ctx := t.Context()
	kitchenID := kernel.NewUUID()
	date := mustDate(t, 2025, time.March, 12)

	kitchens := new(MockKitchenRepository)
	menuItems := new(MockMenuItemRepository)
	orders := new(MockOrderRepository)
	kitchens.On("Get", ctx, kitchenID).Return(mustKitchen(t, kitchenID, 5, 2), nil).Once()
	orders.On("CountActive", ctx, kitchenID, date, kernel.Lunch).
		Return(0, errors.New("connection reset")).Once()

	h := commands.NewValidateOrderCommandHandler(newAdmission(), kitchens, menuItems, orders)
	cmd, err := commands.NewValidateOrderCommand(kitchenID, []kernel.UUID{kernel.NewUUID()}, date, kernel.Lunch)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.False(t, result.Valid)
}

func TestValidateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewValidateOrderCommandHandler(
		newAdmission(), new(MockKitchenRepository), new(MockMenuItemRepository), new(MockOrderRepository),
	)

	_, err := h.Handle(t.Context(), commands.ValidateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrValidateOrderCommandIsNotConstructed)
}
