package get_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/reports"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgForbidden    = "доступ запрещен"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Dashboard(r.Context(), identity)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrForbidden):
			h.logger.Warn("GET /admin/dashboard - Access denied: user_id=%d", identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/dashboard - Failed to build dashboard: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
