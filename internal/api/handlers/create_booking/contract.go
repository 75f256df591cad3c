package create_booking

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	createBooking "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, identity domain.Identity, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
