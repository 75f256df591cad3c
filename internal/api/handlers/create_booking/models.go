package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	createBooking "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP запрос на создание бронирования
type CreateBookingRequest struct {
	CarID      int64  `json:"carId"`
	PickupDate string `json:"pickupDate"` // YYYY-MM-DD
	ReturnDate string `json:"returnDate"` // YYYY-MM-DD
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case с парсингом дат
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	pickup, err := time.Parse(domain.DateFormat, r.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("parse pickupDate: %w", err)
	}

	ret, err := time.Parse(domain.DateFormat, r.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("parse returnDate: %w", err)
	}

	return &createBooking.Request{
		CustomerID: customerID,
		CarID:      r.CarID,
		PickupDate: pickup,
		ReturnDate: ret,
	}, nil
}
