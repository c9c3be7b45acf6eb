package commands

import (
	"context"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/services"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/ports"
)

// ValidateOrderCommandHandler runs the admission decision for a candidate
// order without side effects. It queries kitchen and dish metadata and the
// current bucket count, applies the checks in the fixed order, and returns
// the first rejection, if any.
//
// The handler decides; it persists nothing. Callers that go on to create the
// order use CreateOrderCommandHandler, which repeats the decision inside a
// transaction holding the kitchen lock. A Valid result from this handler is
// therefore advisory: the bucket can fill up between the decision and the
// creation.
type ValidateOrderCommandHandler struct {
	admission *services.AdmissionService
	kitchens  ports.KitchenRepository
	menuItems ports.MenuItemRepository
	orders    ports.OrderRepository
}

// NewValidateOrderCommandHandler creates a handler for admission decisions.
// The repositories are plain read connections; no transaction is involved.
func NewValidateOrderCommandHandler(
	admission *services.AdmissionService,
	kitchens ports.KitchenRepository,
	menuItems ports.MenuItemRepository,
	orders ports.OrderRepository,
) ValidateOrderCommandHandler {
	return ValidateOrderCommandHandler{
		admission: admission,
		kitchens:  kitchens,
		menuItems: menuItems,
		orders:    orders,
	}
}

// Handle processes the validation command.
//
// Admission rejections come back inside the ValidationResult; a non-nil
// error means the decision could not be made (missing kitchen or dish,
// repository failure) and must be treated as "unknown", never as an implicit
// rejection or admission.
func (h ValidateOrderCommandHandler) Handle(ctx context.Context, cmd ValidateOrderCommand) (ValidationResult, error) {
	if err := cmd.Validate(); err != nil {
		return ValidationResult{}, err
	}

	err := runAdmissionChecks(
		ctx,
		h.admission,
		h.kitchens,
		h.menuItems,
		h.orders,
		cmd.KitchenID(),
		cmd.MenuItemIDs(),
		cmd.DeliveryDate(),
		cmd.TimeSlot(),
	)
	return resultFromAdmission(err)
}
