package bookings

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]*bookingRepo.BookingDetails, error)
	ListAll(ctx context.Context, limit uint64) ([]*bookingRepo.BookingDetails, error)
	Delete(ctx context.Context, id int64) error
}

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	SetAvailability(ctx context.Context, id int64, available bool) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
