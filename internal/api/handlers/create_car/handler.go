package create_car

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/cars"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgInvalidForm  = "некорректная форма создания автомобиля"
	msgForbidden    = "доступ запрещен"
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

// Handle POST /api/v1/admin/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req, cleanup, err := parseForm(r)
	if err != nil {
		h.logger.Warn("POST /admin/cars - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer cleanup()

	result, err := h.service.Create(r.Context(), identity, req)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.Is(err, cars.ErrForbidden):
			h.logger.Warn("POST /admin/cars - Forbidden: user_id=%d", identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.As(err, &ve):
			h.logger.Warn("POST /admin/cars - Validation failed: %v", err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("POST /admin/cars - Failed to create car: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/cars - Car created: car_id=%d, admin_id=%d", result.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
