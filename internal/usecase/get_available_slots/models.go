package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID string    // ID бизнеса (пустой = часы по умолчанию)
	Date       time.Time // Выбранная дата; используются только год, месяц и день
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date       time.Time             // Полночь выбранной даты в часовом поясе сервиса
	BusinessID string                // ID бизнеса
	Hours      domain.OperatingHours // Часы, по которым строились слоты
	Slots      []Slot                // Доступные слоты, по возрастанию; не nil
}

// Slot модель часового слота, End() = Start + час
type Slot struct {
	domain.TimeSlot
	Label string // "09:00 AM - 10:00 AM"
}
