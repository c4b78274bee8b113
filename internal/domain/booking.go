package domain

import "time"

// Booking represents a confirmed booking in the ledger.
// Записи не изменяются после создания: отмены для клиента нет,
// удаление доступно только администратору как отдельный канал.
type Booking struct {
	ID          int64
	BarberID    int64
	ServiceID   int64
	BookingDate time.Time
	TimeSlot    string // метка слота из фиксированной сетки, например "14:00"

	CustomerName  string
	CustomerPhone string
	StyleNotes    *string

	// Denormalized data for history
	BarberName   string
	ServiceName  string
	ServicePrice int64

	CreatedAt time.Time
}

// BookingsFilter фильтр для административной выборки бронирований
type BookingsFilter struct {
	Date     *time.Time // Конкретная дата (опционально)
	BarberID *int64     // Фильтр по барберу (опционально)
}
