package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through a constructor. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents an accepted order in the system. It is the aggregate root
// that manages the order lifecycle from acceptance through fulfillment.
//
// Order follows these invariants:
//   - Must have valid order, customer, and kitchen identifiers
//   - Must reference at least one menu item
//   - Must carry a valid delivery date and time slot
//   - Status transitions follow the table in Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The version field supports optimistic concurrency: two concurrent status
// updates of the same order cannot both succeed, because the repository
// writes the new status conditioned on the version it read.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// kitchenID identifies the kitchen fulfilling the order
	kitchenID kernel.UUID

	// menuItemIDs lists the ordered dishes (non-empty)
	menuItemIDs []kernel.UUID

	// deliveryDate is the scheduled calendar date of delivery
	deliveryDate kernel.DeliveryDate

	// timeSlot is the scheduled meal window of delivery
	timeSlot kernel.TimeSlot

	// status represents the current state in the order lifecycle
	status Status

	// version is the optimistic-concurrency token, starting at 1
	version int

	// createdAt is the acceptance instant
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a freshly accepted Order in Pending status with version 1.
// This is the only way to create a new order; RestoreOrder exists solely for
// reconstruction from persistence.
func NewOrder(
	id, customerID, kitchenID kernel.UUID,
	menuItemIDs []kernel.UUID,
	deliveryDate kernel.DeliveryDate,
	timeSlot kernel.TimeSlot,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setKitchenID(kitchenID),
		order.setMenuItemIDs(menuItemIDs),
		order.setDeliveryDate(deliveryDate),
		order.setTimeSlot(timeSlot),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its status and version. The restored order behaves identically
// to one created through normal domain operations.
func RestoreOrder(
	id, customerID, kitchenID kernel.UUID,
	menuItemIDs []kernel.UUID,
	deliveryDate kernel.DeliveryDate,
	timeSlot kernel.TimeSlot,
	status Status,
	version int,
	createdAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, customerID, kitchenID, menuItemIDs, deliveryDate, timeSlot, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version",
			fmt.Errorf("%d is not a positive version", version),
		)
	}

	order.status = status
	order.version = version
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// KitchenID returns the identifier of the fulfilling kitchen.
func (o *Order) KitchenID() kernel.UUID {
	return o.kitchenID
}

// MenuItemIDs returns the ordered dish identifiers.
// The slice is a copy; mutating it does not affect the aggregate.
func (o *Order) MenuItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(o.menuItemIDs))
	copy(ids, o.menuItemIDs)
	return ids
}

// DeliveryDate returns the scheduled delivery date.
func (o *Order) DeliveryDate() kernel.DeliveryDate {
	return o.deliveryDate
}

// TimeSlot returns the scheduled meal window.
func (o *Order) TimeSlot() kernel.TimeSlot {
	return o.timeSlot
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the optimistic-concurrency token.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns the acceptance instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TransitionTo moves the order to the requested status.
//
// The transition is validated against the table in Status; an illegal pair
// returns *InvalidStatusTransitionError naming both statuses and leaves the
// order unchanged. A successful transition increments the version so the
// repository can detect concurrent writers.
func (o *Order) TransitionTo(requested Status) error {
	newStatus, err := o.status.TransitionTo(requested)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.version++
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setKitchenID(kitchenID kernel.UUID) error {
	if err := kitchenID.Validate(); err != nil {
		return err
	}
	o.kitchenID = kitchenID
	return nil
}

func (o *Order) setMenuItemIDs(menuItemIDs []kernel.UUID) error {
	if len(menuItemIDs) == 0 {
		return errs.NewValueIsRequiredError("menuItemIDs")
	}
	for _, id := range menuItemIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	o.menuItemIDs = make([]kernel.UUID, len(menuItemIDs))
	copy(o.menuItemIDs, menuItemIDs)
	return nil
}

func (o *Order) setDeliveryDate(deliveryDate kernel.DeliveryDate) error {
	if err := deliveryDate.Validate(); err != nil {
		return err
	}
	o.deliveryDate = deliveryDate
	return nil
}

func (o *Order) setTimeSlot(timeSlot kernel.TimeSlot) error {
	if err := timeSlot.Validate(); err != nil {
		return err
	}
	o.timeSlot = timeSlot
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
