package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
)

// RecentBooking краткая запись бронирования для дашборда
type RecentBooking struct {
	ID               int64   `json:"id"`
	CustomerUsername string  `json:"customerUsername"`
	CarName          string  `json:"carName"`
	PickupDate       string  `json:"pickupDate"`
	ReturnDate       string  `json:"returnDate"`
	TotalCost        float64 `json:"totalCost"`
	PaymentStatus    string  `json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
}

// DashboardResponse сводка для административного дашборда
type DashboardResponse struct {
	TotalCars      int64 `json:"totalCars"`
	AvailableCars  int64 `json:"availableCars"`
	TotalBookings  int64 `json:"totalBookings"`
	TotalCustomers int64 `json:"totalCustomers"`

	RecentBookings []RecentBooking `json:"recentBookings"`
}

// FromBookingDetails конвертирует запись бронирования в строку дашборда
func FromBookingDetails(d *bookingRepo.BookingDetails) RecentBooking {
	return RecentBooking{
		ID:               d.ID,
		CustomerUsername: d.CustomerUsername,
		CarName:          d.CarName,
		PickupDate:       d.PickupDate.Format(domain.DateFormat),
		ReturnDate:       d.ReturnDate.Format(domain.DateFormat),
		TotalCost:        d.TotalCost,
		PaymentStatus:    string(d.PaymentStatus),
		CreatedAt:        d.CreatedAt,
	}
}
