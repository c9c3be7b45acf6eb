package commands

import (
	"errors"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to admit and persist a new order.
// It carries the same candidate data as ValidateOrderCommand plus the
// identifiers of the new order and the ordering customer.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, kitchenID, itemIDs, date, kernel.Dinner)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	if !result.Valid {
//	    fmt.Println("rejected:", result.Rejection)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	candidate  ValidateOrderCommand

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to admit a new order.
// Validates all identifiers and the candidate order data.
func NewCreateOrderCommand(
	orderID, customerID, kitchenID kernel.UUID,
	menuItemIDs []kernel.UUID,
	deliveryDate kernel.DeliveryDate,
	timeSlot kernel.TimeSlot,
) (CreateOrderCommand, error) {
	candidate, err := NewValidateOrderCommand(kitchenID, menuItemIDs, deliveryDate, timeSlot)

	command := CreateOrderCommand{
		candidate: candidate,
		guard:     guard.NewConstructorGuard(),
	}

	if err = errors.Join(
		err,
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// KitchenID returns the candidate's kitchen identifier.
func (c CreateOrderCommand) KitchenID() kernel.UUID {
	return c.candidate.KitchenID()
}

// MenuItemIDs returns the candidate's dish identifiers.
func (c CreateOrderCommand) MenuItemIDs() []kernel.UUID {
	return c.candidate.MenuItemIDs()
}

// DeliveryDate returns the candidate's delivery date.
func (c CreateOrderCommand) DeliveryDate() kernel.DeliveryDate {
	return c.candidate.DeliveryDate()
}

// TimeSlot returns the candidate's meal window.
func (c CreateOrderCommand) TimeSlot() kernel.TimeSlot {
	return c.candidate.TimeSlot()
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = customerID
	return nil
}
