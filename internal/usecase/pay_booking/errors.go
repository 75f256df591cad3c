package pay_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("pay_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому клиенту
	ErrAccessDenied = errors.New("pay_booking: access denied")

	// ErrAlreadyProcessed возвращается, когда бронирование уже оплачено
	// или платеж по нему завершился неудачей
	ErrAlreadyProcessed = errors.New("pay_booking: booking payment already processed")

	// ErrCarTaken возвращается, когда автомобиль успел занять другой клиент;
	// платеж при этом фиксируется со статусом Failed
	ErrCarTaken = errors.New("pay_booking: car has been taken by another booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("pay_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("pay_booking: internal error")
)
