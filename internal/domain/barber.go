package domain

import "time"

// Barber represents a bookable barber with an independent calendar
type Barber struct {
	ID              int64
	Name            string
	Specialty       string
	Image           string
	ExperienceYears int
	Rating          float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceOffering represents a service from the price list.
// DurationMinutes носит информационный характер: сетка слотов фиксированная
// и от длительности услуги не зависит.
type ServiceOffering struct {
	ID              int64
	Name            string
	Price           int64 // в рупиях, без копеек
	DurationMinutes int
	Description     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
