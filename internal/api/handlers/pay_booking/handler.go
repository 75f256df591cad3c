package pay_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	payBooking "github.com/m04kA/SMC-RentalService/internal/usecase/pay_booking"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgAlreadyProcessed   = "платеж по бронированию уже обработан"
	msgCarTaken           = "автомобиль уже занят другим бронированием, платеж отклонен"
)

type Handler struct {
	useCase PayBookingUseCase
	logger  Logger
}

func NewHandler(useCase PayBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/pay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/pay - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req PayBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/pay - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID, identity.UserID))
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.Is(err, payBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/pay - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, payBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/pay - Access denied: booking_id=%d, user_id=%d", bookingID, identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, payBooking.ErrAlreadyProcessed):
			h.logger.Warn("POST /bookings/{id}/pay - Already processed: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyProcessed)

		case errors.Is(err, payBooking.ErrCarTaken):
			h.logger.Warn("POST /bookings/{id}/pay - Car taken: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCarTaken)

		case errors.As(err, &ve):
			h.logger.Warn("POST /bookings/{id}/pay - Validation failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondValidationError(w, err)

		case errors.Is(err, payBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/pay - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/{id}/pay - Failed to pay booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/pay - Booking paid: booking_id=%d, method=%s", bookingID, result.PaymentMethod)
	handlers.RespondJSON(w, http.StatusOK, result)
}
