package delete_barber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Barbershop-BookingService/internal/api/handlers"
	"github.com/m04kA/Barbershop-BookingService/internal/service/catalog"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
	msgBarberNotFound  = "барбер не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/barbers/{barberId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/barbers/{id} - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	if err := h.service.DeleteBarber(r.Context(), barberID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrBarberNotFound):
			h.logger.Warn("DELETE /admin/barbers/{id} - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("DELETE /admin/barbers/{id} - Failed to delete barber: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/barbers/{id} - Barber deleted successfully: barber_id=%d", barberID)
	handlers.RespondNoContent(w)
}
