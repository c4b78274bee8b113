package add_exclusion

import (
	"errors"
	"net/http"

	"github.com/m04kA/Barbershop-BookingService/internal/api/handlers"
	"github.com/m04kA/Barbershop-BookingService/internal/service/exclusions"
	"github.com/m04kA/Barbershop-BookingService/internal/service/exclusions/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные исключения"
	msgBarberNotFound     = "барбер не найден"
	msgDuplicateExclusion = "дата уже исключена для этого барбера"
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

// Handle POST /api/v1/admin/exclusions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddExclusionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/exclusions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, exclusions.ErrBarberNotFound):
			h.logger.Warn("POST /admin/exclusions - Barber not found: barber_id=%d", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, exclusions.ErrDuplicateExclusion):
			h.logger.Warn("POST /admin/exclusions - Duplicate exclusion: barber_id=%d, date=%s", req.BarberID, req.Date)
			handlers.RespondConflict(w, msgDuplicateExclusion)

		case errors.Is(err, exclusions.ErrInvalidInput):
			h.logger.Warn("POST /admin/exclusions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/exclusions - Failed to add exclusion: barber_id=%d, error=%v", req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/exclusions - Exclusion added successfully: id=%d, barber_id=%d, date=%s",
		result.ID, req.BarberID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
