package cars

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("cars.service: car not found")

	// ErrCarInUse возвращается при попытке удалить автомобиль,
	// на который ссылаются бронирования
	ErrCarInUse = errors.New("cars.service: car is referenced by bookings")

	// ErrForbidden возвращается, когда операция доступна только администратору
	ErrForbidden = errors.New("cars.service: operation requires admin role")

	// ErrInvalidInput возвращается при ошибке валидации входных данных
	ErrInvalidInput = errors.New("cars.service: invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("cars.service: internal error")
)
