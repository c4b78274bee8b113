package remove_exclusion

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Barbershop-BookingService/internal/api/handlers"
	"github.com/m04kA/Barbershop-BookingService/internal/service/exclusions"
)

const (
	msgInvalidExclusionID = "некорректный ID исключения"
	msgExclusionNotFound  = "исключение не найдено"
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

// Handle DELETE /api/v1/admin/exclusions/{exclusionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	exclusionID, err := strconv.ParseInt(vars["exclusionId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/exclusions/{id} - Invalid exclusion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExclusionID)
		return
	}

	if err := h.service.Remove(r.Context(), exclusionID); err != nil {
		switch {
		case errors.Is(err, exclusions.ErrExclusionNotFound):
			h.logger.Warn("DELETE /admin/exclusions/{id} - Exclusion not found: id=%d", exclusionID)
			handlers.RespondNotFound(w, msgExclusionNotFound)

		default:
			h.logger.Error("DELETE /admin/exclusions/{id} - Failed to remove exclusion: id=%d, error=%v", exclusionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/exclusions/{id} - Exclusion removed successfully: id=%d", exclusionID)
	handlers.RespondNoContent(w)
}
