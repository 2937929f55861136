package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// FormatTime renders t as "hh:mm AM" in t's own location
func FormatTime(t time.Time) string {
	return t.Format(domain.SlotTimeFormat)
}

// FormatTimeRange renders a slot as "hh:mm AM - hh:mm PM"
func FormatTimeRange(start time.Time) string {
	return FormatTime(start) + " - " + FormatTime(start.Add(domain.SlotDuration))
}
