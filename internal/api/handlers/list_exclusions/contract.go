package list_exclusions

import (
	"context"

	"github.com/m04kA/Barbershop-BookingService/internal/service/exclusions/models"
)

type ExclusionService interface {
	ListByBarber(ctx context.Context, barberID int64) (*models.ExclusionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
