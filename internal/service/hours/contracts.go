package hours

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// HoursRepository интерфейс хранилища рабочих часов (postgres или кеш поверх него)
type HoursRepository interface {
	Get(ctx context.Context, businessID string) (*domain.BusinessHours, error)
	Upsert(ctx context.Context, hours *domain.BusinessHours) (*domain.BusinessHours, error)
	Delete(ctx context.Context, businessID string) error
	List(ctx context.Context, businessIDs []string) ([]*domain.BusinessHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
