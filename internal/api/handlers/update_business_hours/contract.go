package update_business_hours

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/hours/models"
)

type HoursService interface {
	Set(ctx context.Context, req *models.SetHoursRequest) (*models.HoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
