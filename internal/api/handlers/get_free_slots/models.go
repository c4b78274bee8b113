package get_free_slots

import (
	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	getFreeSlots "github.com/m04kA/Barbershop-BookingService/internal/usecase/get_free_slots"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "14:00"
	Available bool   `json:"available"`
}

// FreeSlotsResponse HTTP модель состояния сетки слотов на дату
type FreeSlotsResponse struct {
	BarberID     int64          `json:"barberId"`
	Date         string         `json:"date"` // "2025-10-15"
	DateExcluded bool           `json:"dateExcluded,omitempty"`
	Degraded     bool           `json:"degraded,omitempty"`
	Slots        []SlotResponse `json:"slots"`
	FreeSlots    []string       `json:"freeSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{StartTime: s.StartTime, Available: s.Available})
	}

	return &FreeSlotsResponse{
		BarberID:     resp.BarberID,
		Date:         resp.Date.Format(domain.DateFormat),
		DateExcluded: resp.DateExcluded,
		Degraded:     resp.Degraded,
		Slots:        slots,
		FreeSlots:    resp.FreeSlots(),
	}
}
