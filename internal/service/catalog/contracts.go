package catalog

import (
	"context"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория барберов и услуг
type CatalogRepository interface {
	ListBarbers(ctx context.Context) ([]*domain.Barber, error)
	GetBarberByID(ctx context.Context, id int64) (*domain.Barber, error)
	CreateBarber(ctx context.Context, barber *domain.Barber) (*domain.Barber, error)
	UpdateBarber(ctx context.Context, id int64, barber *domain.Barber) (*domain.Barber, error)
	DeleteBarber(ctx context.Context, id int64) error

	ListServices(ctx context.Context) ([]*domain.ServiceOffering, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.ServiceOffering, error)
	CreateService(ctx context.Context, service *domain.ServiceOffering) (*domain.ServiceOffering, error)
	UpdateService(ctx context.Context, id int64, service *domain.ServiceOffering) (*domain.ServiceOffering, error)
	DeleteService(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
