package get_open_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
)

// UseCase use case для проверки, открыт ли бизнес сейчас
type UseCase struct {
	resolver     HoursResolver
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(resolver HoursResolver, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		resolver:     resolver,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет, попадает ли текущий момент в рабочие часы.
// Битые часы считаются закрытым бизнесом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now().In(uc.location)

	resp := &Response{
		BusinessID: req.BusinessID,
		CheckedAt:  now,
	}

	hours, err := uc.resolver.Resolve(ctx, req.BusinessID)
	resp.Hours = hours
	if err != nil {
		uc.logger.Warn("GetOpenStatus: business=%q has unusable hours, reporting closed: %v", req.BusinessID, err)
		return resp, nil
	}

	resp.IsOpen = availability.IsOpenAt(now, hours, uc.location)

	uc.logger.Info("GetOpenStatus: business=%q, open=%t (%s)", req.BusinessID, resp.IsOpen, hours.Source)
	return resp, nil
}
