package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Выполняется строго до любого обращения к хранилищу.
func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TimeSlot == "" {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}

	// Метка слота должна принадлежать фиксированной сетке
	if !domain.IsValidTimeSlot(req.TimeSlot) {
		return fmt.Errorf("%w: timeSlot %q is not in the slot grid", ErrInvalidInput, req.TimeSlot)
	}

	if err := validateCustomerName(req.CustomerName); err != nil {
		return err
	}

	if err := validateCustomerPhone(req.CustomerPhone); err != nil {
		return err
	}

	if req.StyleNotes != nil && len(*req.StyleNotes) > domain.MaxStyleNotesLength {
		return fmt.Errorf("%w: styleNotes exceeds %d characters", ErrInvalidInput, domain.MaxStyleNotesLength)
	}

	return nil
}

func validateCustomerName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(trimmed) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}
	return nil
}

func validateCustomerPhone(phone string) error {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}
	if len(trimmed) < domain.MinCustomerPhoneLength || len(trimmed) > domain.MaxCustomerPhoneLength {
		return fmt.Errorf("%w: customerPhone length must be between %d and %d",
			ErrInvalidInput, domain.MinCustomerPhoneLength, domain.MaxCustomerPhoneLength)
	}

	for i, r := range trimmed {
		if unicode.IsDigit(r) || r == ' ' || r == '-' {
			continue
		}
		if r == '+' && i == 0 {
			continue
		}
		return fmt.Errorf("%w: customerPhone contains invalid character %q", ErrInvalidInput, r)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
