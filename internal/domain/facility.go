package domain

import "time"

// Facility is a bookable resource (court, hall, room). Opening hours are
// minutes since midnight; block sizes are hours, matching the settings record.
type Facility struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required,min=3,max=25"`
	Discipline  string `json:"discipline" validate:"required,min=2,max=15"`
	Description string `json:"description" validate:"required,min=3,max=40"`

	OpeningMinute int `json:"opening_minute"`
	ClosingMinute int `json:"closing_minute"`

	TimeBlock        float64 `json:"time_block"`
	MinimalTimeBlock float64 `json:"minimal_time_block"`
	MaximalTimeBlock float64 `json:"maximal_time_block"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
