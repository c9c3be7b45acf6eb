package order

import (
	"errors"
	"fmt"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"
)

// ErrInvalidStatusTransition is the unwrap target of InvalidStatusTransitionError.
// Use errors.Is to classify state-machine rejections.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// InvalidStatusTransitionError reports an attempt to move an order to a status
// not reachable from its current one. It names both statuses so the caller can
// render a precise message.
type InvalidStatusTransitionError struct {
	Current   Status
	Requested Status
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %s to %s",
		ErrInvalidStatusTransition, e.Current, e.Requested)
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// Status represents the fulfillment state of an accepted order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Delivering ──> Completed
//	              │    └────────────────────────^
//	              │         (skip-ahead for kitchens that
//	              │          don't track a preparing step)
//	              │
//	every non-terminal state ──> Cancelled
//
// Completed and Cancelled are terminal: no transition leaves them.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status assigned at order-acceptance time.
	// Pending orders count toward the kitchen's slot capacity.
	Pending

	// Confirmed indicates the kitchen has acknowledged the order.
	Confirmed

	// Preparing indicates the kitchen is cooking the order.
	Preparing

	// Delivering indicates the order has left the kitchen.
	Delivering

	// Completed indicates the order was delivered. Terminal.
	Completed

	// Cancelled indicates the order was withdrawn by either party. Terminal.
	// Cancelled orders release their capacity slot.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Pending:       "PENDING",
		Confirmed:     "CONFIRMED",
		Preparing:     "PREPARING",
		Delivering:    "DELIVERING",
		Completed:     "COMPLETED",
		Cancelled:     "CANCELLED",
	}
}

// getAllowedTransitions returns the transition table as data: current status
// to the set of statuses reachable from it. Tests enumerate this table
// directly; keep every legal pair here and nowhere else.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Confirmed, Cancelled},
		Confirmed:  {Preparing, Delivering, Cancelled},
		Preparing:  {Delivering, Cancelled},
		Delivering: {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Delivering, Completed, Cancelled}
}

// StatusFromString parses the canonical status name ("PENDING", "CONFIRMED",
// "PREPARING", "DELIVERING", "COMPLETED", "CANCELLED").
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != UnknownStatus && name == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// UnknownStatus (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getAllowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the canonical status name, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves the status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// AllowedNext returns the statuses reachable from s. The slice is a fresh
// copy; mutating it does not affect the transition table.
func (s Status) AllowedNext() []Status {
	return getAllowedTransitions()[s]
}

// CanTransitionTo reports whether the (s, next) pair appears in the
// transition table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the requested transition against the table.
//
// Returns:
//   - (next, nil) when the pair (s, next) is in the table
//   - (0, *InvalidStatusTransitionError) otherwise, naming both statuses
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, &InvalidStatusTransitionError{Current: s, Requested: next}
	}

	return next, nil
}
