package kernel

import (
	"fmt"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"
)

// TimeSlot represents one of the fixed daily meal windows a kitchen delivers
// in. The set and its clock-time mapping are process-wide constants; they are
// never mutated at runtime. Adding or removing a slot is a compile-time
// change in this file and nowhere else.
type TimeSlot int

const (
	// UnknownTimeSlot represents an invalid or undefined slot.
	// This value (0) helps catch uninitialized TimeSlot values.
	UnknownTimeSlot TimeSlot = iota

	// Breakfast is the morning delivery window.
	Breakfast

	// Lunch is the midday delivery window.
	Lunch

	// Snacks is the late-afternoon delivery window.
	Snacks

	// Dinner is the evening delivery window.
	Dinner
)

// slotEntry holds the catalog data for a single meal window.
type slotEntry struct {
	name   string
	label  string
	hour   int
	minute int
}

// getSlotCatalog returns the catalog of valid slots. UnknownTimeSlot is
// intentionally absent so it fails every lookup.
func getSlotCatalog() map[TimeSlot]slotEntry {
	return map[TimeSlot]slotEntry{
		Breakfast: {name: "BREAKFAST", label: "Breakfast", hour: 8, minute: 0},
		Lunch:     {name: "LUNCH", label: "Lunch", hour: 13, minute: 0},
		Snacks:    {name: "SNACKS", label: "Snacks", hour: 17, minute: 0},
		Dinner:    {name: "DINNER", label: "Dinner", hour: 20, minute: 0},
	}
}

// AllTimeSlots returns every valid slot in catalog order.
// Used by the availability enumerator to produce one verdict per slot.
func AllTimeSlots() []TimeSlot {
	return []TimeSlot{Breakfast, Lunch, Snacks, Dinner}
}

// TimeSlotFromString parses the canonical slot name ("BREAKFAST", "LUNCH",
// "SNACKS", "DINNER"). Used when reconstructing slots from requests.
func TimeSlotFromString(s string) (TimeSlot, error) {
	for slot, entry := range getSlotCatalog() {
		if entry.name == s {
			return slot, nil
		}
	}
	return UnknownTimeSlot, errs.NewValueIsInvalidErrorWithCause(
		"timeSlot",
		fmt.Errorf("%q is not a valid time slot", s),
	)
}

// Validate checks that the slot is a member of the closed catalog.
// UnknownTimeSlot (0) and any other values are invalid.
func (s TimeSlot) Validate() error {
	if _, ok := getSlotCatalog()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"timeSlot",
			fmt.Errorf("%d is not a valid time slot", s),
		)
	}
	return nil
}

// String returns the canonical slot name, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer and is safe on any TimeSlot value.
func (s TimeSlot) String() string {
	if entry, ok := getSlotCatalog()[s]; ok {
		return entry.name
	}
	return "UNKNOWN"
}

// Label returns the human-readable display name of the slot.
// Calling Label on an invalid slot is a programmer error and panics.
func (s TimeSlot) Label() string {
	entry, ok := getSlotCatalog()[s]
	if !ok {
		panic(fmt.Sprintf("kernel: Label called on invalid time slot %d", s))
	}
	return entry.label
}

// ClockTime returns the canonical hour and minute of the slot's delivery
// instant. Calling ClockTime on an invalid slot is a programmer error and
// panics; callers must Validate slots arriving from external sources first.
func (s TimeSlot) ClockTime() (hour, minute int) {
	entry, ok := getSlotCatalog()[s]
	if !ok {
		panic(fmt.Sprintf("kernel: ClockTime called on invalid time slot %d", s))
	}
	return entry.hour, entry.minute
}

// DeliveryInstant combines a delivery date with the slot's clock time into
// the exact wall-clock instant of delivery in the given location.
func (s TimeSlot) DeliveryInstant(date DeliveryDate, loc *time.Location) time.Time {
	hour, minute := s.ClockTime()
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc)
}
