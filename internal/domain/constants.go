package domain

import "time"

// Default operating hours applied when a business has not configured its own
const (
	DefaultOpeningHour = 3
	DefaultClosingHour = 24 // midnight, exclusive upper bound
)

// Booking horizon
const (
	DefaultHorizonDays = 7
	MaxHorizonDays     = 60
)

// SlotDuration is the width of every bookable slot
const SlotDuration = time.Hour

// Time format constants
const (
	DateFormat       = "2006-01-02" // YYYY-MM-DD
	SlotTimeFormat   = "03:04 PM"   // hh:mm AM/PM
	DefaultTimezone  = "Asia/Karachi"
	DefaultUTCOffset = 5 * 60 // minutes, used when the zone database is unavailable
)
