package domain

import "time"

// HoursSource tells where resolved operating hours came from
type HoursSource string

const (
	HoursSourceStored    HoursSource = "stored"    // both values configured by the owner
	HoursSourcePartial   HoursSource = "partial"   // one value configured, the other defaulted
	HoursSourceDefault   HoursSource = "default"   // nothing configured
	HoursSourceFallback  HoursSource = "fallback"  // store unavailable, defaults applied
	HoursSourceMalformed HoursSource = "malformed" // stored value cannot be parsed, no slots
)

// BusinessHours is the stored hours record of a business.
// OpenTime and CloseTime are independent: either may be nil until configured.
type BusinessHours struct {
	BusinessID string
	OpenTime   *string // "h:mm AM"
	CloseTime  *string // "h:mm PM"
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsEmpty returns true if neither value is configured
func (h *BusinessHours) IsEmpty() bool {
	return h.OpenTime == nil && h.CloseTime == nil
}

// OperatingHours are resolved hours ready for slot arithmetic.
// CloseHour may be 24 (end of day).
type OperatingHours struct {
	OpenHour    int
	OpenMinute  int
	CloseHour   int
	CloseMinute int
	Source      HoursSource
}

// DefaultOperatingHours returns the hours used when nothing is configured
func DefaultOperatingHours(source HoursSource) OperatingHours {
	return OperatingHours{
		OpenHour:  DefaultOpeningHour,
		CloseHour: DefaultClosingHour,
		Source:    source,
	}
}

// IsDefaulted returns true unless both boundaries were configured by the owner
func (h OperatingHours) IsDefaulted() bool {
	return h.Source != HoursSourceStored
}

// WrapsMidnight returns true if the business closes on the next calendar day (e.g. 10 PM - 2 AM)
func (h OperatingHours) WrapsMidnight() bool {
	return h.CloseHour*60+h.CloseMinute < h.OpenHour*60+h.OpenMinute
}
