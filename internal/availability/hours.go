package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ErrMalformedHours is returned when a stored hours value cannot be parsed
var ErrMalformedHours = errors.New("availability: malformed stored hours")

// ResolveHours turns a stored record into operating hours.
// Each missing value is replaced by its default independently; a nil record means nothing is configured.
// On ErrMalformedHours the returned hours carry HoursSourceMalformed.
func ResolveHours(record *domain.BusinessHours) (domain.OperatingHours, error) {
	hours := domain.DefaultOperatingHours(domain.HoursSourceDefault)
	if record == nil || record.IsEmpty() {
		return hours, nil
	}

	if record.OpenTime != nil {
		openTime, err := types.ParseClockTime(*record.OpenTime)
		if err != nil {
			hours.Source = domain.HoursSourceMalformed
			return hours, fmt.Errorf("%w: open time: %v", ErrMalformedHours, err)
		}
		hours.OpenHour, hours.OpenMinute = openTime.Hour(), openTime.Minute()
	}

	if record.CloseTime != nil {
		closeTime, err := types.ParseClockTime(*record.CloseTime)
		if err != nil {
			hours.Source = domain.HoursSourceMalformed
			return hours, fmt.Errorf("%w: close time: %v", ErrMalformedHours, err)
		}
		hours.CloseHour, hours.CloseMinute = closeTime.Hour(), closeTime.Minute()
	}

	hours.Source = domain.HoursSourcePartial
	if record.OpenTime != nil && record.CloseTime != nil {
		hours.Source = domain.HoursSourceStored
	}

	return hours, nil
}
