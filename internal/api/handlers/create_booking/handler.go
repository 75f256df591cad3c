package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCarNotFound        = "автомобиль не найден"
	msgCarNotAvailable    = "автомобиль недоступен для бронирования"
	msgForbidden          = "бронирования создают только клиенты"
	msgPickupInPast       = "дата получения не может быть в прошлом"
	msgInvalidDateRange   = "дата возврата должна быть позже даты получения"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(identity.UserID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), identity, useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrForbidden):
			h.logger.Warn("POST /bookings - Forbidden: user_id=%d", identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBooking.ErrCarNotFound):
			h.logger.Warn("POST /bookings - Car not found: car_id=%d", req.CarID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, createBooking.ErrCarNotAvailable):
			h.logger.Warn("POST /bookings - Car not available: car_id=%d", req.CarID)
			handlers.RespondConflict(w, msgCarNotAvailable)

		case errors.Is(err, createBooking.ErrPickupInPast):
			h.logger.Warn("POST /bookings - Pickup in past: user_id=%d", identity.UserID)
			handlers.RespondBadRequest(w, msgPickupInPast)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: user_id=%d", identity.UserID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d", result.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
