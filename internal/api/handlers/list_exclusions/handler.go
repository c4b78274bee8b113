package list_exclusions

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

// Handle GET /api/v1/admin/barbers/{barberId}/exclusions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /admin/barbers/{id}/exclusions - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	result, err := h.service.ListByBarber(r.Context(), barberID)
	if err != nil {
		switch {
		case errors.Is(err, exclusions.ErrBarberNotFound):
			h.logger.Warn("GET /admin/barbers/{id}/exclusions - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("GET /admin/barbers/{id}/exclusions - Failed to list exclusions: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/barbers/{id}/exclusions - Exclusions listed: barber_id=%d, count=%d",
		barberID, len(result.Exclusions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
