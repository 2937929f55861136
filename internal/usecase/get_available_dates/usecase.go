package get_available_dates

import (
	"context"
	"slices"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
)

// UseCase use case для получения списка дат, доступных для выбора
type UseCase struct {
	location     *time.Location
	defaultDays  int
	maxDays      int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(location *time.Location, defaultDays, maxDays int, logger Logger) *UseCase {
	return &UseCase{
		location:     location,
		defaultDays:  defaultDays,
		maxDays:      maxDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает Days календарных дат начиная с сегодняшней (в часовом поясе сервиса)
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	days := uc.defaultDays
	if req != nil && req.Days != nil {
		days = *req.Days
	}

	if err := validateDays(days, uc.maxDays); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	dates := slices.Collect(availability.CalendarDates(uc.timeProvider.Now(), days, uc.location))
	if dates == nil {
		dates = []time.Time{}
	}

	uc.logger.Info("GetAvailableDates: returned %d dates", len(dates))
	return &Response{Dates: dates}, nil
}
