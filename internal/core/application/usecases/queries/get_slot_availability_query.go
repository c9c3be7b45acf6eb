package queries

import (
	"errors"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/guard"
)

var ErrGetSlotAvailabilityQueryIsNotConstructed = errors.New(
	"GetSlotAvailabilityQuery must be created via NewGetSlotAvailabilityQuery constructor",
)

// GetSlotAvailabilityQuery asks which delivery slots of a given date can still
// admit a candidate order. The dish list matters: a slot can be open on
// capacity yet closed for a dish that cannot be prepared in time.
//
// Example:
//
//	query, err := NewGetSlotAvailabilityQuery(kitchenID, itemIDs, date)
//	if err != nil {
//	    return err
//	}
//
//	slots, err := handler.Handle(ctx, query)
//	for _, s := range slots {
//	    fmt.Printf("%s: available=%v remaining=%d %s\n",
//	        s.Label, s.Available, s.RemainingCapacity, s.Reason)
//	}
type GetSlotAvailabilityQuery struct { //nolint:recvcheck //using for validation
	kitchenID    kernel.UUID
	menuItemIDs  []kernel.UUID
	deliveryDate kernel.DeliveryDate

	guard guard.ConstructorGuard
}

// NewGetSlotAvailabilityQuery creates a query for per-slot availability of a
// kitchen on a delivery date, for the given dish selection.
func NewGetSlotAvailabilityQuery(
	kitchenID kernel.UUID,
	menuItemIDs []kernel.UUID,
	deliveryDate kernel.DeliveryDate,
) (GetSlotAvailabilityQuery, error) {
	query := GetSlotAvailabilityQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setKitchenID(kitchenID),
		query.setMenuItemIDs(menuItemIDs),
		query.setDeliveryDate(deliveryDate),
	); err != nil {
		return GetSlotAvailabilityQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSlotAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetSlotAvailabilityQueryIsNotConstructed)
}

// KitchenID returns the kitchen whose slots are being enumerated.
func (q GetSlotAvailabilityQuery) KitchenID() kernel.UUID {
	return q.kitchenID
}

// MenuItemIDs returns the candidate dish selection.
func (q GetSlotAvailabilityQuery) MenuItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(q.menuItemIDs))
	copy(ids, q.menuItemIDs)
	return ids
}

// DeliveryDate returns the date whose slots are being enumerated.
func (q GetSlotAvailabilityQuery) DeliveryDate() kernel.DeliveryDate {
	return q.deliveryDate
}

func (q *GetSlotAvailabilityQuery) setKitchenID(kitchenID kernel.UUID) error {
	if err := kitchenID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("kitchenID")
	}

	q.kitchenID = kitchenID
	return nil
}

func (q *GetSlotAvailabilityQuery) setMenuItemIDs(menuItemIDs []kernel.UUID) error {
	if len(menuItemIDs) == 0 {
		return errs.NewValueIsRequiredError("menuItemIDs")
	}
	for _, id := range menuItemIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("menuItemIDs", err)
		}
	}

	q.menuItemIDs = make([]kernel.UUID, len(menuItemIDs))
	copy(q.menuItemIDs, menuItemIDs)
	return nil
}

func (q *GetSlotAvailabilityQuery) setDeliveryDate(deliveryDate kernel.DeliveryDate) error {
	if err := deliveryDate.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDate", err)
	}

	q.deliveryDate = deliveryDate
	return nil
}

// SlotAvailabilityResponse describes one slot of the requested date.
// RemainingCapacity is reported even for unavailable slots so a UI can show
// "full" versus "too late" precisely; it never goes below zero.
type SlotAvailabilityResponse struct {
	Slot              kernel.TimeSlot
	Label             string
	Available         bool
	RemainingCapacity int
	Reason            string
}
