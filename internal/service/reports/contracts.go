package reports

import (
	"context"
	"io"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/infra/report"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/user"
)

// BookingRepository интерфейс репозитория бронирований для отчетности
type BookingRepository interface {
	ListAll(ctx context.Context, limit uint64) ([]*bookingRepo.BookingDetails, error)
	CountAll(ctx context.Context) (int64, error)
}

// CarRepository интерфейс репозитория автомобилей для отчетности
type CarRepository interface {
	List(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error)
	CountAll(ctx context.Context) (int64, error)
	CountAvailable(ctx context.Context) (int64, error)
}

// UserRepository интерфейс репозитория пользователей для отчетности
type UserRepository interface {
	CountCustomers(ctx context.Context) (int64, error)
	ListCustomerStats(ctx context.Context) ([]*userRepo.CustomerStats, error)
}

// Renderer интерфейс генератора PDF-отчетов
type Renderer interface {
	RenderBookings(w io.Writer, rows []report.BookingRow, generatedAt time.Time) error
	RenderCars(w io.Writer, rows []report.CarRow, generatedAt time.Time) error
	RenderCustomers(w io.Writer, rows []report.CustomerRow, generatedAt time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
