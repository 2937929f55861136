package domain

import "time"

// TimeSlot represents one bookable hour starting at Start
type TimeSlot struct {
	Start time.Time
}

// End returns the end of the slot
func (s TimeSlot) End() time.Time {
	return s.Start.Add(SlotDuration)
}
