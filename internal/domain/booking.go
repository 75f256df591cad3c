package domain

import (
	"math"
	"time"
)

// PaymentMethod represents how a booking was (or will be) paid
type PaymentMethod string

const (
	PaymentMethodPending PaymentMethod = "Pending"
	PaymentMethodCash    PaymentMethod = "Cash"
	PaymentMethodCard    PaymentMethod = "Card"
)

// PaymentStatus represents the payment lifecycle marker of a booking
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// Booking represents a reservation of one car by one customer
// over a half-open date interval [PickupDate, ReturnDate)
type Booking struct {
	ID         int64
	CustomerID int64
	CarID      int64

	// PickupDate/ReturnDate are pure calendar dates, time of day is ignored
	PickupDate time.Time
	ReturnDate time.Time

	// TotalCost is fixed at creation time from the car's daily rate;
	// later rate changes do not affect existing bookings
	TotalCost float64

	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Days returns the length of the booking in whole calendar days
func (b *Booking) Days() int {
	return DaysBetween(b.PickupDate, b.ReturnDate)
}

// IsPendingPayment returns true while the booking awaits payment
func (b *Booking) IsPendingPayment() bool {
	return b.PaymentStatus == PaymentStatusPending
}

// IsConfirmed returns true once the payment has completed
func (b *Booking) IsConfirmed() bool {
	return b.PaymentStatus == PaymentStatusCompleted
}

// CanBePaid returns true if the booking may go through the payment step
func (b *Booking) CanBePaid() bool {
	return b.PaymentStatus == PaymentStatusPending
}

// CanBeCancelled returns true if the booking may be cancelled
// (pending payment or confirmed; failed payments are terminal)
func (b *Booking) CanBeCancelled() bool {
	return b.PaymentStatus == PaymentStatusPending || b.PaymentStatus == PaymentStatusCompleted
}

// DaysBetween returns the number of whole calendar days between two dates,
// ignoring time of day
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// ComputeTotalCost returns days(pickup, return) * dailyRate rounded to cents
func ComputeTotalCost(pickup, ret time.Time, dailyRate float64) float64 {
	cost := float64(DaysBetween(pickup, ret)) * dailyRate
	return math.Round(cost*100) / 100
}
