package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
)

// BookingResponse бронирование в ответе API
// CustomerUsername/CarName/CarModel заполнены в списках с денормализацией
type BookingResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customerId"`
	CarID      int64  `json:"carId"`
	PickupDate string `json:"pickupDate"`
	ReturnDate string `json:"returnDate"`
	Days       int    `json:"days"`

	TotalCost     float64 `json:"totalCost"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`

	CustomerUsername string `json:"customerUsername,omitempty"`
	CarName          string `json:"carName,omitempty"`
	CarModel         string `json:"carModel,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		CarID:         b.CarID,
		PickupDate:    b.PickupDate.Format(domain.DateFormat),
		ReturnDate:    b.ReturnDate.Format(domain.DateFormat),
		Days:          b.Days(),
		TotalCost:     b.TotalCost,
		PaymentMethod: string(b.PaymentMethod),
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromBookingDetails конвертирует bookingRepo.BookingDetails в BookingResponse
func FromBookingDetails(d *bookingRepo.BookingDetails) *BookingResponse {
	resp := FromDomainBooking(&d.Booking)
	resp.CustomerUsername = d.CustomerUsername
	resp.CarName = d.CarName
	resp.CarModel = d.CarModel
	return resp
}

// FromBookingDetailsList конвертирует список BookingDetails в BookingListResponse
func FromBookingDetailsList(details []*bookingRepo.BookingDetails) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(details)),
		Total:    len(details),
	}
	for _, d := range details {
		resp.Bookings = append(resp.Bookings, *FromBookingDetails(d))
	}
	return resp
}
