package models

import (
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// Request модели

// AddExclusionRequest запрос на исключение даты у барбера
type AddExclusionRequest struct {
	BarberID int64  `json:"barberId"`
	Date     string `json:"date"`   // "2025-10-15"
	Reason   string `json:"reason,omitempty"`
}

// Response модели

// ExclusionResponse ответ с данными исключения
type ExclusionResponse struct {
	ID        int64     `json:"id"`
	BarberID  int64     `json:"barberId"`
	Date      string    `json:"date"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExclusionListResponse ответ со списком исключений
type ExclusionListResponse struct {
	Exclusions []ExclusionResponse `json:"exclusions"`
}

// ExcludedDatesResponse публичный ответ: только сами даты, по возрастанию
type ExcludedDatesResponse struct {
	BarberID int64    `json:"barberId"`
	Dates    []string `json:"dates"`
}

// Методы конвертации

// FromDomainExclusion конвертирует domain модель в DTO
func FromDomainExclusion(e *domain.Exclusion) *ExclusionResponse {
	if e == nil {
		return nil
	}
	return &ExclusionResponse{
		ID:        e.ID,
		BarberID:  e.BarberID,
		Date:      e.ExcludedDate.Format(domain.DateFormat),
		Reason:    e.Reason,
		CreatedAt: e.CreatedAt,
	}
}

// FromDomainExclusionList конвертирует список domain моделей в DTO
func FromDomainExclusionList(exclusions []*domain.Exclusion) *ExclusionListResponse {
	resp := &ExclusionListResponse{Exclusions: make([]ExclusionResponse, 0, len(exclusions))}
	for _, e := range exclusions {
		resp.Exclusions = append(resp.Exclusions, *FromDomainExclusion(e))
	}
	return resp
}

// ToExcludedDates собирает публичный список дат из domain моделей
func ToExcludedDates(barberID int64, exclusions []*domain.Exclusion) *ExcludedDatesResponse {
	resp := &ExcludedDatesResponse{
		BarberID: barberID,
		Dates:    make([]string, 0, len(exclusions)),
	}
	for _, e := range exclusions {
		resp.Dates = append(resp.Dates, e.ExcludedDate.Format(domain.DateFormat))
	}
	return resp
}
