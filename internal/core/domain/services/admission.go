package services

import (
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/menu"
)

// minutesPerHour converts dish prep times into the hour arithmetic of the
// other checks.
const minutesPerHour = 60.0

// DefaultMinAdvanceHours is the advance-booking floor applied when the
// configuration does not override it.
const DefaultMinAdvanceHours = 36.0

// AdmissionService is a domain service implementing the three admission
// checks a candidate order must pass: advance booking, slot capacity, and
// preparation-time feasibility.
//
// The service is pure: it never touches a repository. Callers fetch the
// kitchen, the dishes, and the current bucket count, then invoke the checks
// in the fixed order advance booking -> capacity -> prep time, stopping at
// the first failure.
//
// The clock and location are injected so tests can run against a synthetic
// "now" and a fixed timezone.
type AdmissionService struct {
	minAdvanceHours float64
	location        *time.Location
	now             func() time.Time
}

// NewAdmissionService creates an AdmissionService.
//
// minAdvanceHours is the minimum lead time between "now" and the delivery
// instant; values <= 0 fall back to DefaultMinAdvanceHours. location is the
// timezone slots are interpreted in (nil means time.Local). now supplies the
// current instant (nil means time.Now).
func NewAdmissionService(minAdvanceHours float64, location *time.Location, now func() time.Time) *AdmissionService {
	if minAdvanceHours <= 0 {
		minAdvanceHours = DefaultMinAdvanceHours
	}
	if location == nil {
		location = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &AdmissionService{
		minAdvanceHours: minAdvanceHours,
		location:        location,
		now:             now,
	}
}

// MinAdvanceHours returns the configured advance-booking floor.
func (s *AdmissionService) MinAdvanceHours() float64 {
	return s.minAdvanceHours
}

// HoursUntilDelivery computes the fractional hours between "now" and the
// exact delivery instant of the date and slot. The result may be negative
// when the instant is already past.
func (s *AdmissionService) HoursUntilDelivery(date kernel.DeliveryDate, slot kernel.TimeSlot) float64 {
	deliveryInstant := slot.DeliveryInstant(date, s.location)
	return deliveryInstant.Sub(s.now()).Hours()
}

// CheckAdvanceBooking enforces the advance-booking rule.
//
// Two independent floors apply:
//   - the computed lead time must be at least the configured minimum;
//   - the delivery date must not be earlier than tomorrow. Same-day ordering
//     is always rejected regardless of the slot arithmetic, which also
//     catches clock-skew edge cases around midnight.
//
// On success the computed hoursUntilDelivery is returned so the prep-time
// check can reuse it instead of recomputing. On rejection the returned error
// is a *TimingViolationError carrying the computed lead time and the
// required minimum.
func (s *AdmissionService) CheckAdvanceBooking(date kernel.DeliveryDate, slot kernel.TimeSlot) (float64, error) {
	hoursUntilDelivery := s.HoursUntilDelivery(date, slot)

	tomorrow := kernel.DeliveryDateFromTime(s.now().In(s.location)).AddDays(1)
	if date.Before(tomorrow) {
		return hoursUntilDelivery, &TimingViolationError{
			HoursUntilDelivery: hoursUntilDelivery,
			MinAdvanceHours:    s.minAdvanceHours,
		}
	}

	if hoursUntilDelivery < s.minAdvanceHours {
		return hoursUntilDelivery, &TimingViolationError{
			HoursUntilDelivery: hoursUntilDelivery,
			MinAdvanceHours:    s.minAdvanceHours,
		}
	}

	return hoursUntilDelivery, nil
}

// CheckCapacity enforces the per-kitchen, per-date, per-slot order ceiling.
//
// currentCount is the number of existing non-cancelled orders in the bucket.
// Admission requires strictly currentCount < maxCapacity, so a kitchen with
// maxCapacity 0 never admits. Rejection is a *CapacityExceededError carrying
// both numbers.
func (s *AdmissionService) CheckCapacity(currentCount, maxCapacity int) error {
	if currentCount >= maxCapacity {
		return &CapacityExceededError{
			CurrentCount: currentCount,
			MaxCapacity:  maxCapacity,
		}
	}
	return nil
}

// CheckPrepTime enforces preparation-time feasibility for every dish.
//
// A dish is feasible iff hoursUntilDelivery >= prepTimeMinutes/60 +
// minPrepTimeHours; equality is feasible. The order is atomic: one
// infeasible dish rejects the whole order with a *PrepTimeInsufficientError
// naming that dish and the shortfall. hoursUntilDelivery comes from
// CheckAdvanceBooking's computation, reused rather than recomputed.
func (s *AdmissionService) CheckPrepTime(items []*menu.Item, minPrepTimeHours, hoursUntilDelivery float64) error {
	for _, item := range items {
		requiredHours := float64(item.PrepTimeMinutes())/minutesPerHour + minPrepTimeHours
		if hoursUntilDelivery < requiredHours {
			return &PrepTimeInsufficientError{
				ItemName:           item.Name(),
				RequiredHours:      requiredHours,
				HoursUntilDelivery: hoursUntilDelivery,
			}
		}
	}
	return nil
}
