package export_report

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/reports"
)

const (
	msgUnauthorized  = "требуется авторизация"
	msgForbidden     = "доступ запрещен"
	msgUnknownReport = "неизвестный тип отчета"
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

// Handle GET /api/v1/admin/reports/{report}
// Отчет отдается вложением; документ собирается в буфер,
// чтобы заголовки можно было выставить до записи тела
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	kind := reports.Kind(vars["report"])

	var buf bytes.Buffer
	filename, err := h.service.Export(r.Context(), identity, kind, &buf)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrForbidden):
			h.logger.Warn("GET /admin/reports/{report} - Access denied: user_id=%d", identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reports.ErrUnknownReport):
			h.logger.Warn("GET /admin/reports/{report} - Unknown report kind: %q", kind)
			handlers.RespondNotFound(w, msgUnknownReport)

		default:
			h.logger.Error("GET /admin/reports/{report} - Failed to export: kind=%s, error=%v", kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reports/{report} - Report exported: kind=%s, size=%d", kind, buf.Len())

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
