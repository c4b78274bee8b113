package add_exclusion

import (
	"context"

	"github.com/m04kA/Barbershop-BookingService/internal/service/exclusions/models"
)

type ExclusionService interface {
	Add(ctx context.Context, req *models.AddExclusionRequest) (*models.ExclusionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
