package create_booking

import (
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	createBooking "github.com/m04kA/Barbershop-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BarberID      int64   `json:"barberId"`
	ServiceID     int64   `json:"serviceId"`
	BookingDate   string  `json:"bookingDate"` // "2025-10-15"
	TimeSlot      string  `json:"timeSlot"`    // "14:00"
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	StyleNotes    *string `json:"styleNotes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	BarberID      int64   `json:"barberId"`
	ServiceID     int64   `json:"serviceId"`
	BookingDate   string  `json:"bookingDate"`
	TimeSlot      string  `json:"timeSlot"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	StyleNotes    *string `json:"styleNotes,omitempty"`
	BarberName    string  `json:"barberName"`
	ServiceName   string  `json:"serviceName"`
	ServicePrice  int64   `json:"servicePrice"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		BarberID:      r.BarberID,
		ServiceID:     r.ServiceID,
		Date:          bookingDate,
		TimeSlot:      r.TimeSlot,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		StyleNotes:    r.StyleNotes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		BarberID:      resp.BarberID,
		ServiceID:     resp.ServiceID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		TimeSlot:      resp.TimeSlot,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		StyleNotes:    resp.StyleNotes,
		BarberName:    resp.BarberName,
		ServiceName:   resp.ServiceName,
		ServicePrice:  resp.ServicePrice,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
