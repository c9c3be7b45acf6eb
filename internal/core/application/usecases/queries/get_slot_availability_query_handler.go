package queries

import (
	"context"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/services"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/ports"
)

// GetSlotAvailabilityQueryHandler enumerates the slot catalog for a kitchen
// and date, running the admission checks for each slot independently. One
// slot being closed never hides the verdict for the others.
//
// The enumeration is a pure read: it persists nothing, takes no lock, and
// answering it twice in a row is indistinguishable from answering it once.
type GetSlotAvailabilityQueryHandler struct {
	admission *services.AdmissionService
	kitchens  ports.KitchenRepository
	menuItems ports.MenuItemRepository
	orders    ports.OrderRepository
}

// NewGetSlotAvailabilityQueryHandler creates a handler for slot enumeration.
func NewGetSlotAvailabilityQueryHandler(
	admission *services.AdmissionService,
	kitchens ports.KitchenRepository,
	menuItems ports.MenuItemRepository,
	orders ports.OrderRepository,
) GetSlotAvailabilityQueryHandler {
	return GetSlotAvailabilityQueryHandler{
		admission: admission,
		kitchens:  kitchens,
		menuItems: menuItems,
		orders:    orders,
	}
}

// Handle executes the query, returning one entry per catalog slot in catalog
// order. Each entry carries the first failing check's reason, or an empty
// reason when the slot is available. A missing kitchen or dish is an error,
// not an all-unavailable answer.
func (h GetSlotAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query GetSlotAvailabilityQuery,
) ([]SlotAvailabilityResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	kitchen, err := h.kitchens.Get(ctx, query.KitchenID())
	if err != nil {
		return nil, err
	}

	items, err := h.menuItems.GetByIDs(ctx, query.MenuItemIDs())
	if err != nil {
		return nil, err
	}

	slots := kernel.AllTimeSlots()
	responses := make([]SlotAvailabilityResponse, 0, len(slots))

	for _, slot := range slots {
		count, err := h.orders.CountActive(ctx, query.KitchenID(), query.DeliveryDate(), slot)
		if err != nil {
			return nil, err
		}

		remaining := kitchen.MaxCapacity() - count
		if remaining < 0 {
			remaining = 0
		}

		response := SlotAvailabilityResponse{
			Slot:              slot,
			Label:             slot.Label(),
			RemainingCapacity: remaining,
		}

		hoursUntilDelivery, checkErr := h.admission.CheckAdvanceBooking(query.DeliveryDate(), slot)
		if checkErr == nil {
			checkErr = h.admission.CheckCapacity(count, kitchen.MaxCapacity())
		}
		if checkErr == nil {
			checkErr = h.admission.CheckPrepTime(items, kitchen.MinPrepTimeHours(), hoursUntilDelivery)
		}

		if checkErr != nil {
			if !services.IsAdmissionRejection(checkErr) {
				return nil, checkErr
			}
			response.Reason = checkErr.Error()
		} else {
			response.Available = true
		}

		responses = append(responses, response)
	}

	return responses, nil
}
