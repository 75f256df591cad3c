package get_car

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/cars"
)

const (
	msgInvalidCarID = "некорректный ID автомобиля"
	msgNotFound     = "автомобиль не найден"
)

type Handler struct {
	service CarService
	logger  Logger
}

func NewHandler(service CarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars/{carId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cars/{id} - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	result, err := h.service.GetByID(r.Context(), carID)
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("GET /cars/{id} - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /cars/{id} - Failed to get car: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
