// Package menu contains the menu Item entity: a dish offered by a kitchen.
// The admission engine reads only the preparation time of each dish.
package menu

import (
	"errors"
	"fmt"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item represents a dish on a kitchen's menu. prepTimeMinutes is the time the
// kitchen needs to prepare one serving, before the kitchen-wide buffer is
// applied.
type Item struct {
	// id is the unique identifier for the menu item
	id kernel.UUID

	// kitchenID identifies the kitchen offering the dish
	kitchenID kernel.UUID

	// name is the dish's display name
	name string

	// prepTimeMinutes is the dish's own preparation time
	prepTimeMinutes int

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem creates a menu Item with validation.
//
// Business rules:
//   - ID and kitchen ID must be valid
//   - Name cannot be empty
//   - prepTimeMinutes cannot be negative (0 means ready-to-serve)
func NewItem(id, kitchenID kernel.UUID, name string, prepTimeMinutes int) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setKitchenID(kitchenID),
		item.setName(name),
		item.setPrepTimeMinutes(prepTimeMinutes),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a menu Item from persistent storage.
func RestoreItem(id, kitchenID kernel.UUID, name string, prepTimeMinutes int) (*Item, error) {
	return NewItem(id, kitchenID, name, prepTimeMinutes)
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// KitchenID returns the identifier of the kitchen offering the dish.
func (i *Item) KitchenID() kernel.UUID {
	return i.kitchenID
}

// Name returns the dish's display name.
func (i *Item) Name() string {
	return i.name
}

// PrepTimeMinutes returns the dish's own preparation time in minutes.
func (i *Item) PrepTimeMinutes() int {
	return i.prepTimeMinutes
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setKitchenID(kitchenID kernel.UUID) error {
	if err := kitchenID.Validate(); err != nil {
		return err
	}
	i.kitchenID = kitchenID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrepTimeMinutes(prepTimeMinutes int) error {
	if prepTimeMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"prepTimeMinutes",
			fmt.Errorf("%d is negative", prepTimeMinutes),
		)
	}
	i.prepTimeMinutes = prepTimeMinutes
	return nil
}
