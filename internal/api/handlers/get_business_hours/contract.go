package get_business_hours

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/hours/models"
)

type HoursService interface {
	Get(ctx context.Context, businessID string) (*models.HoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
