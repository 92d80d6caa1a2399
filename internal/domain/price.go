package domain

import "time"

// Weekday bits for PriceRule.DayMask: bit 0 is Monday, bit 6 is Sunday.
const (
	DayMaskMonday  = 1 << 0
	DayMaskSunday  = 1 << 6
	DayMaskAllDays = 0x7F
)

// WeekdayBit maps a time.Weekday onto the Monday-first mask bit.
func WeekdayBit(w time.Weekday) int {
	return 1 << ((int(w) + 6) % 7)
}

// PriceRule is one tier of a facility price table. The rule applies on dates
// inside [ValidFrom, ValidTo], on weekdays set in DayMask, to the time-of-day
// window [StartMinute, EndMinute). Price is the charge for ReferenceDuration
// minutes; proration against it is linear. Rules of one facility may overlap.
type PriceRule struct {
	ID         int64 `json:"id"`
	PriceTable int   `json:"price_table"`
	FacilityID int64 `json:"facility_id"`

	ValidFrom time.Time `json:"valid_from"`
	ValidTo   time.Time `json:"valid_to"`

	DayMask     int `json:"day_mask"`
	StartMinute int `json:"start_minute"`
	EndMinute   int `json:"end_minute"`

	ReferenceDuration int      `json:"reference_duration"`
	Price             float64  `json:"price"`
	PriceWithPass     *float64 `json:"price_with_pass,omitempty"`
	Currency          string   `json:"currency"`
}

// AppliesOn reports whether the rule is in force on the given calendar date.
func (r PriceRule) AppliesOn(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	if d.Before(r.ValidFrom.Truncate(24*time.Hour)) || d.After(r.ValidTo.Truncate(24*time.Hour)) {
		return false
	}
	return r.DayMask&WeekdayBit(date.Weekday()) != 0
}
