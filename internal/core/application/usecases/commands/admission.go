package commands

import (
	"context"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/services"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/ports"
)

// ValidationResult is the outcome of an admission decision.
//
// Valid is true when every check passed. When false, Rejection carries one of
// the structured rejection errors (timing violation, capacity exceeded, prep
// time insufficient) with enough detail to render a precise message.
// Infrastructure failures and missing objects are never folded into a
// ValidationResult; they are returned as ordinary errors.
type ValidationResult struct {
	Valid     bool
	Rejection error
}

// runAdmissionChecks executes the three admission checks for a candidate
// order in the fixed sequence advance booking -> capacity -> prep time,
// short-circuiting on the first failure. The cheap clock-only check runs
// before any repository query.
//
// A nil return means the candidate is admissible against the repositories'
// current state. The caller decides whether that state is protected against
// concurrent writers (CreateOrder runs this under the kitchen lock;
// ValidateOrder deliberately does not).
func runAdmissionChecks(
	ctx context.Context,
	admission *services.AdmissionService,
	kitchens ports.KitchenRepository,
	menuItems ports.MenuItemRepository,
	orders ports.OrderRepository,
	kitchenID kernel.UUID,
	menuItemIDs []kernel.UUID,
	date kernel.DeliveryDate,
	slot kernel.TimeSlot,
) error {
	hoursUntilDelivery, err := admission.CheckAdvanceBooking(date, slot)
	if err != nil {
		return err
	}

	kitchen, err := kitchens.Get(ctx, kitchenID)
	if err != nil {
		return err
	}

	currentCount, err := orders.CountActive(ctx, kitchenID, date, slot)
	if err != nil {
		return err
	}
	if err = admission.CheckCapacity(currentCount, kitchen.MaxCapacity()); err != nil {
		return err
	}

	items, err := menuItems.GetByIDs(ctx, menuItemIDs)
	if err != nil {
		return err
	}

	return admission.CheckPrepTime(items, kitchen.MinPrepTimeHours(), hoursUntilDelivery)
}

// resultFromAdmission folds an admission-check outcome into a
// ValidationResult, keeping infrastructure errors separate.
func resultFromAdmission(err error) (ValidationResult, error) {
	if err == nil {
		return ValidationResult{Valid: true}, nil
	}
	if services.IsAdmissionRejection(err) {
		return ValidationResult{Valid: false, Rejection: err}, nil
	}
	return ValidationResult{}, err
}
