package get_excluded_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Barbershop-BookingService/internal/api/handlers"
	"github.com/m04kA/Barbershop-BookingService/internal/service/exclusions"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
	msgBarberNotFound  = "барбер не найден"
)

type Handler struct {
	service ExclusionService
	logger  Logger
}

func NewHandler(service ExclusionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/excluded-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/excluded-dates - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	result, err := h.service.ExcludedDates(r.Context(), barberID)
	if err != nil {
		switch {
		case errors.Is(err, exclusions.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{id}/excluded-dates - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("GET /barbers/{id}/excluded-dates - Failed to get dates: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/excluded-dates - Dates retrieved: barber_id=%d, count=%d", barberID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
