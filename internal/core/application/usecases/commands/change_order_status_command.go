package commands

import (
	"errors"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/order"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand requests a lifecycle transition for an order.
// The requested status is validated for form here; whether the transition is
// allowed from the order's current status is decided by the aggregate.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, order.Confirmed)
//	if err != nil {
//	    return err
//	}
//	newStatus, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct {
	orderID   kernel.UUID
	requested order.Status
	guard     guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a validated status change command.
// Returns an error if the order ID is empty or the status is not one of the
// known lifecycle statuses.
func NewChangeOrderStatusCommand(orderID kernel.UUID, requested order.Status) (ChangeOrderStatusCommand, error) {
	command := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRequested(requested),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Requested returns the status the order should move to.
func (c ChangeOrderStatusCommand) Requested() order.Status {
	return c.requested
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setRequested(requested order.Status) error {
	if err := requested.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("requested", err)
	}

	c.requested = requested
	return nil
}
