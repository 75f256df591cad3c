package update_car

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RentalService/internal/service/cars/models"
)

// максимальный размер multipart-формы (включая файл изображения)
const maxFormSize = 10 << 20

// parseForm разбирает multipart-форму обновления автомобиля
// Возвращаемый cleanup закрывает файл изображения и вызывается после обработки
func parseForm(r *http.Request) (*models.UpdateCarRequest, func(), error) {
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		return nil, nil, fmt.Errorf("parse multipart form: %w", err)
	}

	seats, err := strconv.Atoi(r.FormValue("seats"))
	if err != nil {
		return nil, nil, fmt.Errorf("parse seats: %w", err)
	}

	dailyRate, err := strconv.ParseFloat(r.FormValue("dailyRate"), 64)
	if err != nil {
		return nil, nil, fmt.Errorf("parse dailyRate: %w", err)
	}

	req := &models.UpdateCarRequest{
		Name:      r.FormValue("name"),
		Brand:     r.FormValue("brand"),
		Model:     r.FormValue("model"),
		Seats:     seats,
		DailyRate: dailyRate,
		ImageURL:  r.FormValue("imageUrl"),
	}

	if raw := r.FormValue("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("parse available: %w", err)
		}
		req.Available = &available
	}

	cleanup := func() {}

	file, header, err := r.FormFile("image")
	if err == nil {
		req.Upload = &models.ImageUpload{
			Filename: header.Filename,
			Data:     file,
		}
		cleanup = func() { file.Close() }
	} else if err != http.ErrMissingFile {
		return nil, nil, fmt.Errorf("read image part: %w", err)
	}

	return req, cleanup, nil
}
