package list_business_hours

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/hours/models"
)

type HoursService interface {
	List(ctx context.Context, businessIDs []string) ([]*models.HoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
