package update_car

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/cars/models"
)

type CarService interface {
	Update(ctx context.Context, identity domain.Identity, id int64, req *models.UpdateCarRequest) (*models.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
