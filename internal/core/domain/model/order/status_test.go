package order_test

import (
	"fmt"
	"testing"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// transitionTable mirrors the allowed pairs so the exhaustive test below can
// check every combination of (current, requested).
var transitionTable = map[order.Status][]order.Status{
	order.Pending:    {order.Confirmed, order.Cancelled},
	order.Confirmed:  {order.Preparing, order.Delivering, order.Cancelled},
	order.Preparing:  {order.Delivering, order.Cancelled},
	order.Delivering: {order.Completed, order.Cancelled},
	order.Completed:  {},
	order.Cancelled:  {},
}

func contains(statuses []order.Status, s order.Status) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func TestStatus_TransitionTo_ExhaustiveTable(t *testing.T) {
	for _, current := range order.AllStatuses() {
		for _, requested := range order.AllStatuses() {
			t.Run(fmt.Sprintf("%s_to_%s", current, requested), func(t *testing.T) {
				next, err := current.TransitionTo(requested)

				if contains(transitionTable[current], requested) {
					require.NoError(t, err)
					assert.Equal(t, requested, next)
				} else {
					require.Error(t, err)
					assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)

					var transitionErr *order.InvalidStatusTransitionError
					require.ErrorAs(t, err, &transitionErr)
					assert.Equal(t, current, transitionErr.Current)
					assert.Equal(t, requested, transitionErr.Requested)
				}
			})
		}
	}
}

func TestStatus_ConfirmedToDelivering_SkipAhead(t *testing.T) {
	next, err := order.Confirmed.TransitionTo(order.Delivering)
	require.NoError(t, err)
	assert.Equal(t, order.Delivering, next)
}

func TestStatus_TerminalStates(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.Empty(t, order.Completed.AllowedNext())
	assert.Empty(t, order.Cancelled.AllowedNext())

	for _, s := range []order.Status{order.Pending, order.Confirmed, order.Preparing, order.Delivering} {
		assert.False(t, s.IsTerminal(), s.String())
		assert.NotEmpty(t, s.AllowedNext(), s.String())
	}
}

func TestStatus_TransitionTo_InvalidTarget(t *testing.T) {
	_, err := order.Pending.TransitionTo(order.UnknownStatus)
	require.Error(t, err)

	_, err = order.Pending.TransitionTo(order.Status(42))
	require.Error(t, err)
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.AllStatuses() {
		require.NoError(t, s.Validate())
	}

	require.Error(t, order.UnknownStatus.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PENDING", order.Pending.String())
	assert.Equal(t, "CONFIRMED", order.Confirmed.String())
	assert.Equal(t, "PREPARING", order.Preparing.String())
	assert.Equal(t, "DELIVERING", order.Delivering.String())
	assert.Equal(t, "COMPLETED", order.Completed.String())
	assert.Equal(t, "CANCELLED", order.Cancelled.String())
	assert.Equal(t, "UNKNOWN", order.UnknownStatus.String())
}

func TestStatusFromString(t *testing.T) {
	for _, s := range order.AllStatuses() {
		parsed, err := order.StatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.StatusFromString("SHIPPED")
	require.Error(t, err)

	_, err = order.StatusFromString("UNKNOWN")
	require.Error(t, err)
}
