package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"three days", date(2024, time.January, 1), date(2024, time.January, 4), 3},
		{"single day", date(2024, time.January, 1), date(2024, time.January, 2), 1},
		{"same day", date(2024, time.January, 1), date(2024, time.January, 1), 0},
		{"across month boundary", date(2024, time.January, 30), date(2024, time.February, 2), 3},
		{"time of day ignored", time.Date(2024, time.March, 1, 23, 30, 0, 0, time.UTC), time.Date(2024, time.March, 3, 0, 15, 0, 0, time.UTC), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.from, tt.to))
		})
	}
}

func TestComputeTotalCost(t *testing.T) {
	// pickup 2024-01-01, return 2024-01-04, dailyRate 45.00 -> 135.00
	got := ComputeTotalCost(date(2024, time.January, 1), date(2024, time.January, 4), 45.00)
	assert.Equal(t, 135.00, got)

	got = ComputeTotalCost(date(2024, time.May, 10), date(2024, time.May, 11), 79.99)
	assert.Equal(t, 79.99, got)

	// rounding to cents
	got = ComputeTotalCost(date(2024, time.May, 1), date(2024, time.May, 4), 33.33)
	assert.Equal(t, 99.99, got)
}

func TestBooking_PaymentTransitions(t *testing.T) {
	b := &Booking{PaymentStatus: PaymentStatusPending}
	assert.True(t, b.IsPendingPayment())
	assert.True(t, b.CanBePaid())
	assert.True(t, b.CanBeCancelled())

	b.PaymentStatus = PaymentStatusCompleted
	assert.True(t, b.IsConfirmed())
	assert.False(t, b.CanBePaid())
	assert.True(t, b.CanBeCancelled())

	b.PaymentStatus = PaymentStatusFailed
	assert.False(t, b.CanBePaid())
	assert.False(t, b.CanBeCancelled())
}

func TestCar_ImageSource(t *testing.T) {
	url := "https://example.com/car.jpg"
	path := "4c7e2a_car.jpg"

	assert.Equal(t, "URL", (&Car{ImageURL: &url}).ImageSource())
	assert.Equal(t, "Upload", (&Car{ImagePath: &path}).ImageSource())
	assert.Equal(t, "None", (&Car{}).ImageSource())
}
