package exclusions

import (
	"context"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// ExclusionRepository интерфейс репозитория исключённых дат
type ExclusionRepository interface {
	Create(ctx context.Context, excl *domain.Exclusion) (*domain.Exclusion, error)
	Delete(ctx context.Context, id int64) error
	ListByBarber(ctx context.Context, barberID int64) ([]*domain.Exclusion, error)
}

// CatalogRepository интерфейс репозитория барберов
type CatalogRepository interface {
	GetBarberByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
