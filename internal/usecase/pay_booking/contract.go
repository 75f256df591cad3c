package pay_booking

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdatePayment(ctx context.Context, id int64, method domain.PaymentMethod, status domain.PaymentStatus) error
}

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	// MarkUnavailable условно снимает доступность: затрагивает строку
	// только когда автомобиль еще свободен
	MarkUnavailable(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
