package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create вставляет бронирование; конфликт за слот арбитрирует
	// уникальный индекс хранилища (ErrSlotTaken)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ExclusionRepository интерфейс репозитория календаря исключений
type ExclusionRepository interface {
	Exists(ctx context.Context, barberID int64, date string) (bool, error)
}

// CatalogRepository интерфейс репозитория справочника
type CatalogRepository interface {
	GetBarberByID(ctx context.Context, id int64) (*domain.Barber, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.ServiceOffering, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
