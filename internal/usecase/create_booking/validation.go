package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.CarID <= 0 {
		return fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	if req.PickupDate.IsZero() {
		return fmt.Errorf("%w: pickupDate is required", ErrInvalidInput)
	}

	if req.ReturnDate.IsZero() {
		return fmt.Errorf("%w: returnDate is required", ErrInvalidInput)
	}

	return nil
}

// validateDates проверяет период бронирования
// Получение не раньше сегодняшнего дня, возврат строго позже получения
func validateDates(pickup, ret, now time.Time) error {
	today := truncateToDay(now)

	if truncateToDay(pickup).Before(today) {
		return ErrPickupInPast
	}

	if domain.DaysBetween(pickup, ret) < 1 {
		return ErrInvalidDateRange
	}

	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
