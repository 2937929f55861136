package availability

import (
	"iter"
	"time"
)

// CalendarDates yields horizonDays consecutive civil dates starting with today (the civil date of now).
// The sequence is restartable: every range over it starts from today again.
func CalendarDates(now time.Time, horizonDays int, loc *time.Location) iter.Seq[time.Time] {
	today := CivilDate(now, loc)
	return func(yield func(time.Time) bool) {
		for i := 0; i < horizonDays; i++ {
			if !yield(today.AddDate(0, 0, i)) {
				return
			}
		}
	}
}
