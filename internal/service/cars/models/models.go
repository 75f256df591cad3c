package models

import (
	"io"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ImageUpload загруженный файл изображения
type ImageUpload struct {
	Filename string
	Data     io.Reader
}

// CreateCarRequest запрос на создание автомобиля
// ImageURL и Upload взаимоисключающие: либо внешняя ссылка, либо файл
type CreateCarRequest struct {
	Name      string
	Brand     string
	Model     string
	Seats     int
	DailyRate float64
	Available *bool

	ImageURL string
	Upload   *ImageUpload
}

// UpdateCarRequest запрос на обновление автомобиля
type UpdateCarRequest struct {
	Name      string
	Brand     string
	Model     string
	Seats     int
	DailyRate float64
	Available *bool

	ImageURL string
	Upload   *ImageUpload
}

// ListCarsRequest параметры каталога автомобилей
type ListCarsRequest struct {
	SearchTerm   string
	Seats        *int
	Availability domain.AvailabilityFilter
}

// CarResponse автомобиль в ответе API
type CarResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Model     string  `json:"model"`
	Seats     int     `json:"seats"`
	DailyRate float64 `json:"dailyRate"`

	// ImageURL внешняя ссылка, ImagePath ссылка на загруженный файл
	ImageURL  *string `json:"imageUrl,omitempty"`
	ImagePath *string `json:"imagePath,omitempty"`

	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CarListResponse список автомобилей
type CarListResponse struct {
	Cars  []CarResponse `json:"cars"`
	Total int           `json:"total"`
}

// FromDomainCar конвертирует domain.Car в CarResponse
func FromDomainCar(c *domain.Car) *CarResponse {
	return &CarResponse{
		ID:        c.ID,
		Name:      c.Name,
		Brand:     c.Brand,
		Model:     c.Model,
		Seats:     c.Seats,
		DailyRate: c.DailyRate,
		ImageURL:  c.ImageURL,
		ImagePath: c.ImagePath,
		Available: c.Available,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainCars конвертирует список domain.Car в CarListResponse
func FromDomainCars(cars []*domain.Car) *CarListResponse {
	resp := &CarListResponse{
		Cars:  make([]CarResponse, 0, len(cars)),
		Total: len(cars),
	}
	for _, c := range cars {
		resp.Cars = append(resp.Cars, *FromDomainCar(c))
	}
	return resp
}
