package get_open_status

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса
type Request struct {
	BusinessID string
}

// Response модель ответа
type Response struct {
	BusinessID string
	IsOpen     bool
	Hours      domain.OperatingHours
	CheckedAt  time.Time // Момент проверки в часовом поясе сервиса
}
