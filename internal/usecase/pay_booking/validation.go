package pay_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Реквизиты карты проверяются только на заполненность - оплата симулируется
func validateRequest(req *Request) (domain.PaymentMethod, error) {
	if req.BookingID <= 0 {
		return "", fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return "", fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	method := domain.PaymentMethod(req.Method)
	if !isValidMethod(method) {
		ve := domain.NewValidationError()
		ve.Add("paymentMethod", "payment method must be Cash or Card")
		return "", ve
	}

	if method == domain.PaymentMethodCard {
		if err := validateCard(req.Card); err != nil {
			return "", err
		}
	}

	return method, nil
}

func isValidMethod(method domain.PaymentMethod) bool {
	for _, m := range domain.ValidPaymentMethods {
		if method == m {
			return true
		}
	}
	return false
}

func validateCard(card *CardDetails) error {
	ve := domain.NewValidationError()

	if card == nil {
		ve.Add("card", "card details are required for card payments")
		return ve
	}

	if strings.TrimSpace(card.Number) == "" {
		ve.Add("cardNumber", "card number is required")
	}
	if strings.TrimSpace(card.HolderName) == "" {
		ve.Add("cardHolderName", "card holder name is required")
	}
	if strings.TrimSpace(card.Expiry) == "" {
		ve.Add("cardExpiry", "card expiry is required")
	}
	if strings.TrimSpace(card.CVV) == "" {
		ve.Add("cardCVV", "card CVV is required")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
