package update_car

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/cars"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgInvalidCarID = "некорректный ID автомобиля"
	msgInvalidForm  = "некорректная форма обновления автомобиля"
	msgForbidden    = "доступ запрещен"
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

// Handle PUT /api/v1/admin/cars/{carId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	carID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/cars/{id} - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	req, cleanup, err := parseForm(r)
	if err != nil {
		h.logger.Warn("PUT /admin/cars/{id} - Invalid form: car_id=%d, error=%v", carID, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer cleanup()

	result, err := h.service.Update(r.Context(), identity, carID, req)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.Is(err, cars.ErrForbidden):
			h.logger.Warn("PUT /admin/cars/{id} - Forbidden: user_id=%d", identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("PUT /admin/cars/{id} - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.As(err, &ve):
			h.logger.Warn("PUT /admin/cars/{id} - Validation failed: car_id=%d, error=%v", carID, err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("PUT /admin/cars/{id} - Failed to update car: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/cars/{id} - Car updated: car_id=%d, admin_id=%d", carID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
