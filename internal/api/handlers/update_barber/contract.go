package update_barber

import (
	"context"

	"github.com/m04kA/Barbershop-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	UpdateBarber(ctx context.Context, id int64, req *models.UpdateBarberRequest) (*models.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
