package availability

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	hoursRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/hours"
)

// HoursRepository is the read side of the business hours store
type HoursRepository interface {
	Get(ctx context.Context, businessID string) (*domain.BusinessHours, error)
}

// Recorder receives the source of every resolution
type Recorder interface {
	ObserveHoursResolution(source string)
}

// Logger is the printf-style logger used by the resolver
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HoursResolver looks up a business's stored hours and applies defaults.
// It only reads from the store.
type HoursResolver struct {
	repo     HoursRepository
	recorder Recorder
	logger   Logger
}

// NewHoursResolver creates a resolver. recorder may be nil.
func NewHoursResolver(repo HoursRepository, recorder Recorder, logger Logger) *HoursResolver {
	return &HoursResolver{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
	}
}

// Resolve returns the operating hours of businessID.
//
// Missing hours resolve to defaults. A failing store also resolves to defaults (source "fallback")
// and is only logged. The only error is ErrMalformedHours for unparsable stored values (source "malformed").
func (r *HoursResolver) Resolve(ctx context.Context, businessID string) (domain.OperatingHours, error) {
	record, err := r.repo.Get(ctx, businessID)
	switch {
	case errors.Is(err, hoursRepo.ErrHoursNotFound):
		r.logger.Info("ResolveHours: no hours stored for business=%q, using defaults %02d:00-%02d:00",
			businessID, domain.DefaultOpeningHour, domain.DefaultClosingHour)
		return r.done(domain.DefaultOperatingHours(domain.HoursSourceDefault)), nil

	case err != nil:
		r.logger.Error("ResolveHours: failed to read hours for business=%q, using defaults: %v", businessID, err)
		return r.done(domain.DefaultOperatingHours(domain.HoursSourceFallback)), nil
	}

	hours, err := ResolveHours(record)
	if err != nil {
		r.logger.Error("ResolveHours: business=%q: %v", businessID, err)
		return r.done(hours), err
	}

	return r.done(hours), nil
}

func (r *HoursResolver) done(hours domain.OperatingHours) domain.OperatingHours {
	if r.recorder != nil {
		r.recorder.ObserveHoursResolution(string(hours.Source))
	}
	return hours
}
