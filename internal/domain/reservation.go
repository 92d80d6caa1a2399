package domain

import "time"

// Reservation is a confirmed booking of a facility time slot. Start is minutes
// since midnight on Date; Duration is minutes. Total and PerPersonTotal carry
// the quoted amounts at booking time.
type Reservation struct {
	ID         int64 `json:"id"`
	ClientID   int64 `json:"client_id"`
	FacilityID int64 `json:"facility_id" validate:"required"`

	Date        time.Time `json:"date" validate:"required"`
	StartMinute int       `json:"start_minute"`
	Duration    int       `json:"duration" validate:"required,gt=0"`

	Split         bool `json:"split"`
	Players       int  `json:"players" validate:"required,gte=1"`
	AcceptedRules bool `json:"accepted_rules"`

	Total          float64 `json:"total"`
	PerPersonTotal float64 `json:"per_person_total"`

	CreatedAt time.Time `json:"created_at"`
}

// StartTime combines Date and StartMinute into a wall-clock instant.
func (r Reservation) StartTime() time.Time {
	d := r.Date
	return time.Date(d.Year(), d.Month(), d.Day(), r.StartMinute/60, r.StartMinute%60, 0, 0, d.Location())
}
