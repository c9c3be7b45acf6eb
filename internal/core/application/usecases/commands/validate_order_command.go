package commands

import (
	"errors"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/guard"
)

var ErrValidateOrderCommandIsNotConstructed = errors.New(
	"ValidateOrderCommand must be created via NewValidateOrderCommand constructor",
)

// ValidateOrderCommand represents a candidate order to be checked for
// admission: which kitchen, which dishes, and which delivery date and slot.
// The candidate is ephemeral; it exists only for the duration of the
// validation call and nothing is persisted.
//
// Example:
//
//	cmd, err := NewValidateOrderCommand(kitchenID, itemIDs, date, kernel.Lunch)
//	if err != nil {
//	    return fmt.Errorf("invalid candidate: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // infrastructure failure, not a rejection
//	}
//	if !result.Valid {
//	    fmt.Println(result.Rejection) // precise, structured reason
//	}
type ValidateOrderCommand struct { //nolint:recvcheck //using for validation
	kitchenID    kernel.UUID
	menuItemIDs  []kernel.UUID
	deliveryDate kernel.DeliveryDate
	timeSlot     kernel.TimeSlot

	guard guard.ConstructorGuard
}

// NewValidateOrderCommand creates a command describing a candidate order.
// Validates that the kitchen ID is valid, the dish list is non-empty with
// valid IDs, and the date and slot are well-formed.
func NewValidateOrderCommand(
	kitchenID kernel.UUID,
	menuItemIDs []kernel.UUID,
	deliveryDate kernel.DeliveryDate,
	timeSlot kernel.TimeSlot,
) (ValidateOrderCommand, error) {
	command := ValidateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setKitchenID(kitchenID),
		command.setMenuItemIDs(menuItemIDs),
		command.setDeliveryDate(deliveryDate),
		command.setTimeSlot(timeSlot),
	); err != nil {
		return ValidateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidateOrderCommand) Validate() error {
	return c.guard.Validate(ErrValidateOrderCommandIsNotConstructed)
}

// KitchenID returns the candidate's kitchen identifier.
func (c ValidateOrderCommand) KitchenID() kernel.UUID {
	return c.kitchenID
}

// MenuItemIDs returns the candidate's dish identifiers.
func (c ValidateOrderCommand) MenuItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.menuItemIDs))
	copy(ids, c.menuItemIDs)
	return ids
}

// DeliveryDate returns the candidate's delivery date.
func (c ValidateOrderCommand) DeliveryDate() kernel.DeliveryDate {
	return c.deliveryDate
}

// TimeSlot returns the candidate's meal window.
func (c ValidateOrderCommand) TimeSlot() kernel.TimeSlot {
	return c.timeSlot
}

func (c *ValidateOrderCommand) setKitchenID(kitchenID kernel.UUID) error {
	if err := kitchenID.Validate(); err != nil {
		return err
	}
	c.kitchenID = kitchenID
	return nil
}

func (c *ValidateOrderCommand) setMenuItemIDs(menuItemIDs []kernel.UUID) error {
	if len(menuItemIDs) == 0 {
		return errs.NewValueIsRequiredError("menuItemIDs")
	}
	for _, id := range menuItemIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.menuItemIDs = make([]kernel.UUID, len(menuItemIDs))
	copy(c.menuItemIDs, menuItemIDs)
	return nil
}

func (c *ValidateOrderCommand) setDeliveryDate(deliveryDate kernel.DeliveryDate) error {
	if err := deliveryDate.Validate(); err != nil {
		return err
	}
	c.deliveryDate = deliveryDate
	return nil
}

func (c *ValidateOrderCommand) setTimeSlot(timeSlot kernel.TimeSlot) error {
	if err := timeSlot.Validate(); err != nil {
		return err
	}
	c.timeSlot = timeSlot
	return nil
}
