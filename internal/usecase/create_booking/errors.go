package create_booking

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("create_booking: car not found")

	// ErrCarNotAvailable возвращается, когда автомобиль уже занят
	ErrCarNotAvailable = errors.New("create_booking: car is not available")

	// ErrForbidden возвращается, когда бронирование создает не клиент
	ErrForbidden = errors.New("create_booking: only customers can create bookings")

	// ErrPickupInPast возвращается, когда дата получения раньше сегодняшнего дня
	ErrPickupInPast = errors.New("create_booking: pickup date is in the past")

	// ErrInvalidDateRange возвращается, когда дата возврата не позже даты получения
	ErrInvalidDateRange = errors.New("create_booking: return date must be after pickup date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
