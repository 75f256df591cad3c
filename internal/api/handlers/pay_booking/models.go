package pay_booking

import (
	payBooking "github.com/m04kA/SMC-RentalService/internal/usecase/pay_booking"
)

// PayBookingRequest HTTP запрос на оплату бронирования
// Реквизиты карты обязательны только при paymentMethod = "Card"
type PayBookingRequest struct {
	PaymentMethod  string `json:"paymentMethod"`
	CardNumber     string `json:"cardNumber,omitempty"`
	CardHolderName string `json:"cardHolderName,omitempty"`
	CardExpiry     string `json:"cardExpiry,omitempty"`
	CardCVV        string `json:"cardCVV,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PayBookingRequest) ToUseCaseRequest(bookingID, customerID int64) *payBooking.Request {
	req := &payBooking.Request{
		BookingID:  bookingID,
		CustomerID: customerID,
		Method:     r.PaymentMethod,
	}

	if r.CardNumber != "" || r.CardHolderName != "" || r.CardExpiry != "" || r.CardCVV != "" {
		req.Card = &payBooking.CardDetails{
			Number:     r.CardNumber,
			HolderName: r.CardHolderName,
			Expiry:     r.CardExpiry,
			CVV:        r.CardCVV,
		}
	}

	return req
}
