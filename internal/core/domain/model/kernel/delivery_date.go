package kernel

import (
	"fmt"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"
)

// ErrDeliveryDateIsNotConstructed indicates that a DeliveryDate was not
// created through one of the constructor functions.
var ErrDeliveryDateIsNotConstructed = errs.NewValueIsRequiredError(
	"DeliveryDate must be created via NewDeliveryDate, DeliveryDateFromTime, or ParseDeliveryDate",
)

// deliveryDateLayout is the canonical text form of a delivery date.
const deliveryDateLayout = "2006-01-02"

// DeliveryDate is a calendar date value object without a clock component.
// The delivery instant is obtained by combining it with a TimeSlot.
// The zero value is invalid and fails Validate.
//
// DeliveryDate is immutable and safe for concurrent use.
type DeliveryDate struct {
	year  int
	month time.Month
	day   int
}

// NewDeliveryDate creates a DeliveryDate from its calendar components.
// The components must form a real calendar date.
func NewDeliveryDate(year int, month time.Month, day int) (DeliveryDate, error) {
	if year == 0 {
		return DeliveryDate{}, ErrDeliveryDateIsNotConstructed
	}

	// time.Date normalizes overflowing components; a round-trip mismatch
	// means the input was not a real date.
	normalized := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if normalized.Year() != year || normalized.Month() != month || normalized.Day() != day {
		return DeliveryDate{}, errs.NewValueIsInvalidErrorWithCause(
			"deliveryDate",
			fmt.Errorf("%04d-%02d-%02d is not a valid calendar date", year, month, day),
		)
	}

	return DeliveryDate{year: year, month: month, day: day}, nil
}

// DeliveryDateFromTime creates a DeliveryDate from the calendar date of t,
// interpreted in t's location.
func DeliveryDateFromTime(t time.Time) DeliveryDate {
	return DeliveryDate{year: t.Year(), month: t.Month(), day: t.Day()}
}

// ParseDeliveryDate parses the "YYYY-MM-DD" text form used in requests and
// persistence.
func ParseDeliveryDate(s string) (DeliveryDate, error) {
	t, err := time.Parse(deliveryDateLayout, s)
	if err != nil {
		return DeliveryDate{}, errs.NewValueIsInvalidErrorWithCause("deliveryDate", err)
	}
	return DeliveryDateFromTime(t), nil
}

// Year returns the calendar year.
func (d DeliveryDate) Year() int {
	return d.year
}

// Month returns the calendar month.
func (d DeliveryDate) Month() time.Month {
	return d.month
}

// Day returns the day of the month.
func (d DeliveryDate) Day() int {
	return d.day
}

// Time returns midnight of the date in the given location.
func (d DeliveryDate) Time(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// AddDays returns the date shifted by the given number of days.
func (d DeliveryDate) AddDays(days int) DeliveryDate {
	return DeliveryDateFromTime(d.Time(time.UTC).AddDate(0, 0, days))
}

// Before reports whether d is strictly earlier than other.
func (d DeliveryDate) Before(other DeliveryDate) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// IsEqual reports whether two dates are the same calendar day.
func (d DeliveryDate) IsEqual(other DeliveryDate) bool {
	return d.year == other.year && d.month == other.month && d.day == other.day
}

// String returns the "YYYY-MM-DD" form.
func (d DeliveryDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Validate returns ErrDeliveryDateIsNotConstructed for the zero value.
func (d DeliveryDate) Validate() error {
	if d.year == 0 {
		return ErrDeliveryDateIsNotConstructed
	}
	return nil
}
