package get_all_bookings

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

type BookingService interface {
	ListAll(ctx context.Context, identity domain.Identity) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
