package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// IsOpenAt reports whether the business is open at now (minute precision, inclusive bounds).
// Windows where closing is earlier than opening wrap past midnight.
// A business counts as open only when the owner configured both values: slot defaults are not opening hours.
func IsOpenAt(now time.Time, hours domain.OperatingHours, loc *time.Location) bool {
	if hours.IsDefaulted() {
		return false
	}

	now = now.In(loc)
	y, m, d := now.Date()
	opening := time.Date(y, m, d, hours.OpenHour, hours.OpenMinute, 0, 0, loc)
	closing := time.Date(y, m, d, hours.CloseHour, hours.CloseMinute, 0, 0, loc)

	if hours.WrapsMidnight() {
		return !now.Before(opening) || !now.After(closing)
	}
	return !now.Before(opening) && !now.After(closing)
}
