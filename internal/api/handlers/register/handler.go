package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/auth"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			h.logger.Warn("POST /auth/register - Validation failed: username=%s", req.Username)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("POST /auth/register - Failed to register: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
