package kernel_test

import (
	"testing"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryDate_ValidInput(t *testing.T) {
	date, err := kernel.NewDeliveryDate(2025, time.June, 30)
	require.NoError(t, err)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.June, date.Month())
	assert.Equal(t, 30, date.Day())
	assert.Equal(t, "2025-06-30", date.String())
}

func TestNewDeliveryDate_InvalidCalendarDate(t *testing.T) {
	_, err := kernel.NewDeliveryDate(2025, time.February, 30)
	require.Error(t, err)

	_, err = kernel.NewDeliveryDate(2025, time.April, 31)
	require.Error(t, err)
}

func TestNewDeliveryDate_LeapDay(t *testing.T) {
	_, err := kernel.NewDeliveryDate(2024, time.February, 29)
	require.NoError(t, err)

	_, err = kernel.NewDeliveryDate(2025, time.February, 29)
	require.Error(t, err)
}

func TestParseDeliveryDate(t *testing.T) {
	date, err := kernel.ParseDeliveryDate("2025-12-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-01", date.String())

	_, err = kernel.ParseDeliveryDate("01/12/2025")
	require.Error(t, err)
}

func TestDeliveryDate_Before(t *testing.T) {
	earlier, _ := kernel.NewDeliveryDate(2025, time.March, 14)
	later, _ := kernel.NewDeliveryDate(2025, time.March, 15)
	nextMonth, _ := kernel.NewDeliveryDate(2025, time.April, 1)

	assert.True(t, earlier.Before(later))
	assert.True(t, later.Before(nextMonth))
	assert.False(t, later.Before(earlier))
	assert.False(t, later.Before(later))
}

func TestDeliveryDate_AddDays(t *testing.T) {
	date, _ := kernel.NewDeliveryDate(2025, time.January, 31)
	assert.Equal(t, "2025-02-01", date.AddDays(1).String())
	assert.Equal(t, "2025-01-30", date.AddDays(-1).String())
}

func TestDeliveryDate_Time(t *testing.T) {
	date, _ := kernel.NewDeliveryDate(2025, time.March, 15)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), date.Time(time.UTC))
}

func TestDeliveryDate_Validate(t *testing.T) {
	var zero kernel.DeliveryDate
	require.Error(t, zero.Validate())
	assert.ErrorIs(t, zero.Validate(), kernel.ErrDeliveryDateIsNotConstructed)

	date, _ := kernel.NewDeliveryDate(2025, time.March, 15)
	require.NoError(t, date.Validate())
}

func TestDeliveryDate_IsEqual(t *testing.T) {
	a, _ := kernel.NewDeliveryDate(2025, time.March, 15)
	b, _ := kernel.NewDeliveryDate(2025, time.March, 15)
	c, _ := kernel.NewDeliveryDate(2025, time.March, 16)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
