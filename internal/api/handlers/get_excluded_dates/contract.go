package get_excluded_dates

import (
	"context"

	"github.com/m04kA/Barbershop-BookingService/internal/service/exclusions/models"
)

type ExclusionService interface {
	ExcludedDates(ctx context.Context, barberID int64) (*models.ExcludedDatesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
