package get_free_slots

import (
	"context"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListTakenSlots возвращает занятые метки слотов для пары (барбер, дата)
	ListTakenSlots(ctx context.Context, barberID int64, date string) ([]string, error)
}

// ExclusionRepository интерфейс репозитория календаря исключений
type ExclusionRepository interface {
	Exists(ctx context.Context, barberID int64, date string) (bool, error)
}

// CatalogRepository интерфейс репозитория справочника
type CatalogRepository interface {
	GetBarberByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
