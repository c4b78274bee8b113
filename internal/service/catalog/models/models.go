package models

import (
	"strings"
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// Request модели

// CreateBarberRequest запрос на создание барбера
type CreateBarberRequest struct {
	Name            string  `json:"name"`
	Specialty       string  `json:"specialty"`
	Image           string  `json:"image,omitempty"`
	ExperienceYears int     `json:"experienceYears"`
	Rating          float64 `json:"rating"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateBarberRequest) ToDomain() *domain.Barber {
	return &domain.Barber{
		Name:            strings.TrimSpace(r.Name),
		Specialty:       strings.TrimSpace(r.Specialty),
		Image:           strings.TrimSpace(r.Image),
		ExperienceYears: r.ExperienceYears,
		Rating:          r.Rating,
	}
}

// UpdateBarberRequest запрос на обновление барбера
type UpdateBarberRequest struct {
	Name            string  `json:"name"`
	Specialty       string  `json:"specialty"`
	Image           string  `json:"image,omitempty"`
	ExperienceYears int     `json:"experienceYears"`
	Rating          float64 `json:"rating"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdateBarberRequest) ToDomain() *domain.Barber {
	return &domain.Barber{
		Name:            strings.TrimSpace(r.Name),
		Specialty:       strings.TrimSpace(r.Specialty),
		Image:           strings.TrimSpace(r.Image),
		ExperienceYears: r.ExperienceYears,
		Rating:          r.Rating,
	}
}

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string `json:"name"`
	Price           int64  `json:"price"`
	DurationMinutes int    `json:"durationMinutes"`
	Description     string `json:"description,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateServiceRequest) ToDomain() *domain.ServiceOffering {
	return &domain.ServiceOffering{
		Name:            strings.TrimSpace(r.Name),
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Description:     strings.TrimSpace(r.Description),
	}
}

// UpdateServiceRequest запрос на обновление услуги
type UpdateServiceRequest struct {
	Name            string `json:"name"`
	Price           int64  `json:"price"`
	DurationMinutes int    `json:"durationMinutes"`
	Description     string `json:"description,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdateServiceRequest) ToDomain() *domain.ServiceOffering {
	return &domain.ServiceOffering{
		Name:            strings.TrimSpace(r.Name),
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Description:     strings.TrimSpace(r.Description),
	}
}

// Response модели

// BarberResponse ответ с данными барбера
type BarberResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Specialty       string    `json:"specialty"`
	Image           string    `json:"image,omitempty"`
	ExperienceYears int       `json:"experienceYears"`
	Rating          float64   `json:"rating"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BarberListResponse ответ со списком барберов
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Price           int64     `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainBarber конвертирует domain модель в DTO
func FromDomainBarber(b *domain.Barber) *BarberResponse {
	if b == nil {
		return nil
	}
	return &BarberResponse{
		ID:              b.ID,
		Name:            b.Name,
		Specialty:       b.Specialty,
		Image:           b.Image,
		ExperienceYears: b.ExperienceYears,
		Rating:          b.Rating,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBarberList конвертирует список domain моделей в DTO
func FromDomainBarberList(barbers []*domain.Barber) *BarberListResponse {
	resp := &BarberListResponse{Barbers: make([]BarberResponse, 0, len(barbers))}
	for _, b := range barbers {
		resp.Barbers = append(resp.Barbers, *FromDomainBarber(b))
	}
	return resp
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.ServiceOffering) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Description:     s.Description,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.ServiceOffering) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, *FromDomainService(s))
	}
	return resp
}
