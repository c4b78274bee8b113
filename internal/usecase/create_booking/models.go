package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	BarberID      int64     // ID барбера
	ServiceID     int64     // ID услуги
	Date          time.Time // Дата бронирования (без времени)
	TimeSlot      string    // Метка слота из фиксированной сетки, например "14:00"
	CustomerName  string    // Имя клиента
	CustomerPhone string    // Телефон клиента
	StyleNotes    *string   // Пожелания к стрижке (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	BarberID      int64
	ServiceID     int64
	BookingDate   time.Time
	TimeSlot      string
	CustomerName  string
	CustomerPhone string
	StyleNotes    *string

	// Денормализованные данные
	BarberName   string
	ServiceName  string
	ServicePrice int64

	CreatedAt time.Time
}
