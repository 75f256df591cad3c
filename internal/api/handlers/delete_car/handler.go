package delete_car

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/cars"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgInvalidCarID = "некорректный ID автомобиля"
	msgForbidden    = "доступ запрещен"
	msgNotFound     = "автомобиль не найден"
	msgCarInUse     = "автомобиль нельзя удалить: на него есть бронирования"
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

// Handle DELETE /api/v1/admin/cars/{carId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	carID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/cars/{id} - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	if err := h.service.Delete(r.Context(), identity, carID); err != nil {
		switch {
		case errors.Is(err, cars.ErrForbidden):
			h.logger.Warn("DELETE /admin/cars/{id} - Forbidden: user_id=%d", identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("DELETE /admin/cars/{id} - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cars.ErrCarInUse):
			h.logger.Warn("DELETE /admin/cars/{id} - Car in use: car_id=%d", carID)
			handlers.RespondConflict(w, msgCarInUse)

		default:
			h.logger.Error("DELETE /admin/cars/{id} - Failed to delete car: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/cars/{id} - Car deleted: car_id=%d, admin_id=%d", carID, identity.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
