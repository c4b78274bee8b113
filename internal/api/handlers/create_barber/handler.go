package create_barber

import (
	"errors"
	"net/http"

	"github.com/m04kA/Barbershop-BookingService/internal/api/handlers"
	"github.com/m04kA/Barbershop-BookingService/internal/service/catalog"
	"github.com/m04kA/Barbershop-BookingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные барбера"
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

// Handle POST /api/v1/admin/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBarberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/barbers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateBarber(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/barbers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/barbers - Failed to create barber: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/barbers - Barber created successfully: barber_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
