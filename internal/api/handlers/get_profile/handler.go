package get_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/auth"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgNotFound     = "пользователь не найден"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetProfile(r.Context(), identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			h.logger.Warn("GET /users/me/profile - User not found: user_id=%d", identity.UserID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /users/me/profile - Failed to get profile: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
