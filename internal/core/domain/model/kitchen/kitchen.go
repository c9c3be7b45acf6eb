// Package kitchen contains the Kitchen aggregate: a home kitchen that accepts
// orders subject to per-slot capacity and preparation-time constraints.
package kitchen

import (
	"errors"
	"fmt"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"
)

// ErrKitchenIsNotConstructed is returned when a Kitchen instance was not
// created through NewKitchen or RestoreKitchen.
var ErrKitchenIsNotConstructed = errors.New("Kitchen must be created via NewKitchen or RestoreKitchen constructor")

// Kitchen represents a registered home kitchen. The engine reads two of its
// properties when admitting orders:
//
//   - maxCapacity: the ceiling of accepted orders per delivery date and time
//     slot. A kitchen with maxCapacity 0 never admits an order.
//   - minPrepTimeHours: a kitchen-wide buffer added to every dish's own
//     preparation time when checking feasibility.
//
// Kitchen uses private fields to ensure encapsulation and maintains its
// invariants through the constructors.
type Kitchen struct {
	// id is the unique identifier for the kitchen
	id kernel.UUID

	// name is the kitchen's display name
	name string

	// maxCapacity is the number of orders accepted per slot per day
	maxCapacity int

	// minPrepTimeHours is the fixed buffer added to each dish's prep time
	minPrepTimeHours float64

	// isConstructed ensures the kitchen was created via a constructor
	isConstructed bool
}

// NewKitchen creates a Kitchen with validation.
//
// Business rules:
//   - ID must be valid
//   - Name cannot be empty
//   - maxCapacity cannot be negative (0 is legal and means "never admits")
//   - minPrepTimeHours cannot be negative
func NewKitchen(id kernel.UUID, name string, maxCapacity int, minPrepTimeHours float64) (*Kitchen, error) {
	kitchen := &Kitchen{
		isConstructed: true,
	}

	if err := errors.Join(
		kitchen.setID(id),
		kitchen.setName(name),
		kitchen.setMaxCapacity(maxCapacity),
		kitchen.setMinPrepTimeHours(minPrepTimeHours),
	); err != nil {
		return nil, err
	}

	return kitchen, nil
}

// RestoreKitchen reconstructs a Kitchen aggregate from persistent storage.
// The restored kitchen behaves identically to one created through NewKitchen.
func RestoreKitchen(id kernel.UUID, name string, maxCapacity int, minPrepTimeHours float64) (*Kitchen, error) {
	return NewKitchen(id, name, maxCapacity, minPrepTimeHours)
}

// Validate ensures the Kitchen instance was properly constructed.
func (k *Kitchen) Validate() error {
	if k == nil || !k.isConstructed {
		return ErrKitchenIsNotConstructed
	}

	return nil
}

// IsEqual compares two kitchens by their unique identifiers.
func (k *Kitchen) IsEqual(other *Kitchen) bool {
	return other != nil && k.id.IsEqual(other.id)
}

// ID returns the kitchen's unique identifier.
func (k *Kitchen) ID() kernel.UUID {
	return k.id
}

// Name returns the kitchen's display name.
func (k *Kitchen) Name() string {
	return k.name
}

// MaxCapacity returns the order ceiling per delivery date and time slot.
func (k *Kitchen) MaxCapacity() int {
	return k.maxCapacity
}

// MinPrepTimeHours returns the kitchen-wide preparation buffer in hours.
func (k *Kitchen) MinPrepTimeHours() float64 {
	return k.minPrepTimeHours
}

func (k *Kitchen) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	k.id = id
	return nil
}

func (k *Kitchen) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	k.name = name
	return nil
}

func (k *Kitchen) setMaxCapacity(maxCapacity int) error {
	if maxCapacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxCapacity",
			fmt.Errorf("%d is negative", maxCapacity),
		)
	}
	k.maxCapacity = maxCapacity
	return nil
}

func (k *Kitchen) setMinPrepTimeHours(minPrepTimeHours float64) error {
	if minPrepTimeHours < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"minPrepTimeHours",
			fmt.Errorf("%g is negative", minPrepTimeHours),
		)
	}
	k.minPrepTimeHours = minPrepTimeHours
	return nil
}
