package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// HoursResolver возвращает рабочие часы бизнеса с учетом значений по умолчанию
type HoursResolver interface {
	Resolve(ctx context.Context, businessID string) (domain.OperatingHours, error)
}

// MetricsRecorder принимает количество отданных слотов (может быть nil)
type MetricsRecorder interface {
	ObserveSlotsReturned(today bool, count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
