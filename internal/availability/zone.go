package availability

import (
	"fmt"
	"time"
)

// LoadLocation returns the named zone, or a fixed zone with offsetMinutes east of UTC
// when the zone database has no such entry.
func LoadLocation(name string, offsetMinutes int) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.FixedZone(fixedZoneName(offsetMinutes), offsetMinutes*60)
}

// CivilDate returns midnight of t's calendar day in loc
func CivilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameCivilDate reports whether a and b fall on the same calendar day in loc
func SameCivilDate(a, b time.Time, loc *time.Location) bool {
	return CivilDate(a, loc).Equal(CivilDate(b, loc))
}

func fixedZoneName(offsetMinutes int) string {
	sign := '+'
	if offsetMinutes < 0 {
		sign = '-'
		offsetMinutes = -offsetMinutes
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, offsetMinutes/60, offsetMinutes%60)
}
