package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidClockTime is returned when a time-of-day string cannot be parsed
var ErrInvalidClockTime = errors.New("invalid clock time")

// ClockTime is a wall-clock time of day without a date.
// Hour is in 24-hour form (0-24, where 24:00 is the end of the day).
type ClockTime struct {
	hour   int
	minute int
}

// NewClockTime builds a ClockTime from 24-hour components
func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return ClockTime{}, fmt.Errorf("%w: %02d:%02d out of range", ErrInvalidClockTime, hour, minute)
	}
	return ClockTime{hour: hour, minute: minute}, nil
}

// ParseClockTime parses "H:MM AM/PM" (case-insensitive marker) or 24-hour "HH:MM".
//
// 12 AM becomes hour 0, 12 PM stays 12, any other PM hour gets +12.
// Without a marker the hour is taken as is (0-24).
func ParseClockTime(s string) (ClockTime, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	hourPart, minutePart, ok := strings.Cut(fields[0], ":")
	if !ok {
		return ClockTime{}, fmt.Errorf("%w: %q has no minutes", ErrInvalidClockTime, s)
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q: bad hour", ErrInvalidClockTime, s)
	}
	if len(minutePart) != 2 {
		return ClockTime{}, fmt.Errorf("%w: %q: bad minutes", ErrInvalidClockTime, s)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q: bad minutes", ErrInvalidClockTime, s)
	}

	if len(fields) == 1 {
		return NewClockTime(hour, minute)
	}

	if hour < 1 || hour > 12 {
		return ClockTime{}, fmt.Errorf("%w: %q: 12-hour value out of range", ErrInvalidClockTime, s)
	}

	switch strings.ToLower(fields[1]) {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 12 {
			hour += 12
		}
	default:
		return ClockTime{}, fmt.Errorf("%w: %q: unknown marker", ErrInvalidClockTime, s)
	}

	return NewClockTime(hour, minute)
}

// Hour returns the hour in 24-hour form
func (c ClockTime) Hour() int {
	return c.hour
}

// Minute returns the minute component
func (c ClockTime) Minute() int {
	return c.minute
}

// Minutes returns minutes since midnight
func (c ClockTime) Minutes() int {
	return c.hour*60 + c.minute
}

// String renders the time in the canonical "h:mm AM" form used for storage
func (c ClockTime) String() string {
	hour := c.hour % 24
	marker := "AM"
	if hour >= 12 {
		marker = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, c.minute, marker)
}

// Clock24 renders the time as "HH:MM"
func (c ClockTime) Clock24() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// Label renders the time for display and storage: "h:mm AM", except the end of
// the day which stays "24:00" so it is not read back as midnight at the start of the day
func (c ClockTime) Label() string {
	if c.hour == 24 {
		return c.Clock24()
	}
	return c.String()
}

// FormatClock renders 24-hour components like Label. Out-of-range values render as ""
func FormatClock(hour, minute int) string {
	c, err := NewClockTime(hour, minute)
	if err != nil {
		return ""
	}
	return c.Label()
}
