package car

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("car.repository: car not found")

	// ErrCarNotAvailable возвращается, когда автомобиль уже занят
	// (условное обновление available не затронуло ни одной строки)
	ErrCarNotAvailable = errors.New("car.repository: car is not available")

	// ErrCarInUse возвращается при попытке удалить автомобиль,
	// на который ссылаются бронирования (FK restrict)
	ErrCarInUse = errors.New("car.repository: car is referenced by bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("car.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("car.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("car.repository: failed to scan row")
)
