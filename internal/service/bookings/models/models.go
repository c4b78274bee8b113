package models

import (
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на административную выборку журнала бронирований
type ListBookingsRequest struct {
	Date     *string `json:"date,omitempty"`     // Конкретная дата "2025-10-15" (опционально)
	BarberID *int64  `json:"barberId,omitempty"` // Фильтр по барберу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{BarberID: r.BarberID}
	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, err
		}
		filter.Date = &date
	}
	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	BarberID    int64  `json:"barberId"`
	ServiceID   int64  `json:"serviceId"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	TimeSlot    string `json:"timeSlot"`    // "14:00"

	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	StyleNotes    *string `json:"styleNotes,omitempty"`

	// Денормализованные данные
	BarberName   string `json:"barberName"`
	ServiceName  string `json:"serviceName"`
	ServicePrice int64  `json:"servicePrice"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:            b.ID,
		BarberID:      b.BarberID,
		ServiceID:     b.ServiceID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		TimeSlot:      b.TimeSlot,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		StyleNotes:    b.StyleNotes,
		BarberName:    b.BarberName,
		ServiceName:   b.ServiceName,
		ServicePrice:  b.ServicePrice,
		CreatedAt:     b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}
