package services

import (
	"errors"
	"fmt"
)

// Unwrap targets for the three admission rejection kinds. Callers classify
// rejections with errors.Is; every rejection also carries structured detail
// for precise user-facing messages.
var (
	ErrTimingViolation      = errors.New("timing violation")
	ErrCapacityExceeded     = errors.New("capacity exceeded")
	ErrPrepTimeInsufficient = errors.New("prep time insufficient")
)

// TimingViolationError reports a delivery instant that is too soon or in the
// past. HoursUntilDelivery may be fractional or negative.
type TimingViolationError struct {
	HoursUntilDelivery float64
	MinAdvanceHours    float64
}

func (e *TimingViolationError) Error() string {
	return fmt.Sprintf("%s: delivery is %.1f hours away, at least %.1f hours of advance booking required",
		ErrTimingViolation, e.HoursUntilDelivery, e.MinAdvanceHours)
}

func (e *TimingViolationError) Unwrap() error {
	return ErrTimingViolation
}

// CapacityExceededError reports a full capacity bucket: the kitchen already
// has CurrentCount non-cancelled orders for the date and slot, against a
// ceiling of MaxCapacity.
type CapacityExceededError struct {
	CurrentCount int
	MaxCapacity  int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: %d of %d orders already booked for this slot",
		ErrCapacityExceeded, e.CurrentCount, e.MaxCapacity)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// PrepTimeInsufficientError reports the first dish of an order that cannot be
// prepared before the delivery instant. RequiredHours is the dish's own prep
// time plus the kitchen-wide buffer.
type PrepTimeInsufficientError struct {
	ItemName           string
	RequiredHours      float64
	HoursUntilDelivery float64
}

func (e *PrepTimeInsufficientError) Error() string {
	return fmt.Sprintf("%s: %q needs %.1f hours of preparation but delivery is %.1f hours away",
		ErrPrepTimeInsufficient, e.ItemName, e.RequiredHours, e.HoursUntilDelivery)
}

func (e *PrepTimeInsufficientError) Unwrap() error {
	return ErrPrepTimeInsufficient
}

// IsAdmissionRejection reports whether err is one of the three admission
// rejection kinds, as opposed to an infrastructure failure.
func IsAdmissionRejection(err error) bool {
	return errors.Is(err, ErrTimingViolation) ||
		errors.Is(err, ErrCapacityExceeded) ||
		errors.Is(err, ErrPrepTimeInsufficient)
}
