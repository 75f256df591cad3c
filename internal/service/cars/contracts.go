package cars

import (
	"context"
	"io"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	List(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	SetAvailability(ctx context.Context, id int64, available bool) error
	Delete(ctx context.Context, id int64) error
}

// ImageStore интерфейс хранилища загруженных изображений
type ImageStore interface {
	Save(filename string, src io.Reader) (string, error)
	Delete(ref string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
