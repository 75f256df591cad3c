package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings"
)

const (
	msgUnauthorized     = "требуется авторизация"
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "доступ запрещен"
	msgCannotCancel     = "бронирование не может быть отменено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Cancel(r.Context(), identity, bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("DELETE /bookings/{id} - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to cancel booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled: booking_id=%d, user_id=%d", bookingID, identity.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
