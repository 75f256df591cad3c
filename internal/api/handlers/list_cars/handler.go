package list_cars

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/cars/models"
)

const (
	msgInvalidSeats        = "некорректное значение фильтра seats"
	msgInvalidAvailability = "некорректное значение фильтра availability"
)

type Handler struct {
	service CarService
	logger  Logger

	// фильтр доступности при отсутствии query-параметра:
	// публичный каталог показывает только свободные автомобили,
	// админский - весь парк
	defaultAvailability domain.AvailabilityFilter
}

func NewHandler(service CarService, defaultAvailability domain.AvailabilityFilter, logger Logger) *Handler {
	return &Handler{
		service:             service,
		logger:              logger,
		defaultAvailability: defaultAvailability,
	}
}

// Handle GET /api/v1/cars и GET /api/v1/admin/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListCarsRequest{
		SearchTerm:   query.Get("search"),
		Availability: h.defaultAvailability,
	}

	if raw := query.Get("seats"); raw != "" {
		seats, err := strconv.Atoi(raw)
		if err != nil || seats < domain.MinSeats {
			h.logger.Warn("GET /cars - Invalid seats filter: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidSeats)
			return
		}
		req.Seats = &seats
	}

	if raw := query.Get("availability"); raw != "" {
		switch domain.AvailabilityFilter(raw) {
		case domain.AvailabilityAvailable, domain.AvailabilityBooked:
			req.Availability = domain.AvailabilityFilter(raw)
		case "all":
			req.Availability = domain.AvailabilityAll
		default:
			h.logger.Warn("GET /cars - Invalid availability filter: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidAvailability)
			return
		}
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /cars - Failed to list cars: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
