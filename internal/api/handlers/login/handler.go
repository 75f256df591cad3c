package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверное имя пользователя или пароль"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed to login: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - User authenticated: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
