package availability

import (
	"iter"
	"slices"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Window is the range of slot starts for one calendar date
type Window struct {
	Opening     time.Time // selected date at the opening hour
	Closing     time.Time // selected date at the closing hour
	Start       time.Time // first slot start
	LatestStart time.Time // Closing minus one slot
	Today       bool
}

// SlotWindow computes the slot window for selectedDate given now and the resolved hours.
// Both instants are normalised to loc first. ok is false when no slot can be offered:
// the date is in the past, the business is already closed today, or the start passes LatestStart.
//
// Boundaries use whole hours only; the minute parts of hours are ignored here.
func SlotWindow(selectedDate, now time.Time, hours domain.OperatingHours, loc *time.Location) (w Window, ok bool) {
	now = now.In(loc)
	day := CivilDate(selectedDate, loc)
	today := CivilDate(now, loc)

	if day.Before(today) {
		return Window{}, false
	}

	y, m, d := day.Date()
	w.Opening = time.Date(y, m, d, hours.OpenHour, 0, 0, 0, loc)
	w.Closing = time.Date(y, m, d, hours.CloseHour, 0, 0, 0, loc)
	w.Start = w.Opening
	w.Today = day.Equal(today)

	if w.Today {
		if !now.Before(w.Closing) {
			return w, false
		}
		if rounded := RoundUpToHour(now); rounded.After(w.Opening) {
			w.Start = rounded
		}
	}

	w.LatestStart = w.Closing.Add(-domain.SlotDuration)
	if w.Start.After(w.LatestStart) {
		return w, false
	}

	return w, true
}

// Slots yields hourly slot starts for selectedDate in ascending order.
// Every start s satisfies Opening <= s <= LatestStart, and s >= now rounded up to the hour when
// selectedDate is today.
func Slots(selectedDate, now time.Time, hours domain.OperatingHours, loc *time.Location) iter.Seq[time.Time] {
	w, ok := SlotWindow(selectedDate, now, hours, loc)
	return func(yield func(time.Time) bool) {
		if !ok {
			return
		}
		for s := w.Start; !s.After(w.LatestStart); s = s.Add(domain.SlotDuration) {
			if !yield(s) {
				return
			}
		}
	}
}

// GenerateSlots collects Slots into a slice. The result is never nil.
func GenerateSlots(selectedDate, now time.Time, hours domain.OperatingHours, loc *time.Location) []time.Time {
	slots := slices.Collect(Slots(selectedDate, now, hours, loc))
	if slots == nil {
		return []time.Time{}
	}
	return slots
}

// RoundUpToHour truncates t to the hour and moves it one hour forward
// when t has a non-zero minute or second.
func RoundUpToHour(t time.Time) time.Time {
	truncated := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	if t.Minute() > 0 || t.Second() > 0 {
		return truncated.Add(time.Hour)
	}
	return truncated
}
