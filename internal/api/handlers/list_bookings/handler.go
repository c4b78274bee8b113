package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/Barbershop-BookingService/internal/api/handlers"
	"github.com/m04kA/Barbershop-BookingService/internal/service/bookings"
	"github.com/m04kA/Barbershop-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/admin/bookings
// Query params: date (optional, YYYY-MM-DD), barberId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		req.Date = &dateStr
	}

	if barberIDStr := r.URL.Query().Get("barberId"); barberIDStr != "" {
		barberID, err := strconv.ParseInt(barberIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid barber ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarberID)
			return
		}
		req.BarberID = &barberID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings listed successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
