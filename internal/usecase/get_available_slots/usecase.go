package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// UseCase use case для получения доступных часовых слотов на выбранную дату
type UseCase struct {
	resolver       HoursResolver
	location       *time.Location
	maxHorizonDays int
	recorder       MetricsRecorder
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case.
// maxHorizonDays = 0 отключает проверку горизонта, recorder может быть nil
func NewUseCase(
	resolver HoursResolver,
	location *time.Location,
	maxHorizonDays int,
	recorder MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		resolver:       resolver,
		location:       location,
		maxHorizonDays: maxHorizonDays,
		recorder:       recorder,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Ошибки возвращаются только для некорректного запроса: недоступное хранилище или битые часы дают пустой список
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Приводим дату к полуночи в часовом поясе сервиса
	now := uc.timeProvider.Now()
	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
	today := availability.CivilDate(now, uc.location)

	uc.logger.Info("GetAvailableSlots: business=%q, date=%s", req.BusinessID, day.Format(domain.DateFormat))

	if err := validateHorizon(day, today, uc.maxHorizonDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: business=%q: %v", req.BusinessID, err)
		return nil, err
	}

	resp := &Response{
		Date:       day,
		BusinessID: req.BusinessID,
		Slots:      []Slot{},
	}

	// 3. Получаем рабочие часы
	hours, err := uc.resolver.Resolve(ctx, req.BusinessID)
	resp.Hours = hours
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: business=%q has unusable hours, no slots: %v", req.BusinessID, err)
		return resp, nil
	}

	// 4. Строим слоты
	for start := range availability.Slots(day, now, hours, uc.location) {
		resp.Slots = append(resp.Slots, Slot{
			TimeSlot: domain.TimeSlot{Start: start},
			Label:    availability.FormatTimeRange(start),
		})
	}

	if uc.recorder != nil {
		uc.recorder.ObserveSlotsReturned(day.Equal(today), len(resp.Slots))
	}

	uc.logger.Info("GetAvailableSlots: business=%q, date=%s, hours=%02d:%02d-%02d:%02d (%s), slots=%d",
		req.BusinessID, day.Format(domain.DateFormat),
		hours.OpenHour, hours.OpenMinute, hours.CloseHour, hours.CloseMinute, hours.Source, len(resp.Slots))
	return resp, nil
}
