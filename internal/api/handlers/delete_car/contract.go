package delete_car

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

type CarService interface {
	Delete(ctx context.Context, identity domain.Identity, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
