package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому клиенту
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("bookings.service: booking cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
