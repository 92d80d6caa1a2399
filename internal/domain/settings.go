package domain

// Settings is the single shared configuration record for the reservation
// service. It is loaded once per request and passed explicitly; nothing reads
// it as ambient global state. Hours are minutes since midnight, block and
// advance values are hours.
type Settings struct {
	ID int64 `json:"id"`

	OpeningMinute int `json:"opening_minute"`
	ClosingMinute int `json:"closing_minute"`

	TimeBlock        float64 `json:"time_block"`
	MinimalTimeBlock float64 `json:"minimal_time_block"`
	MaximalTimeBlock float64 `json:"maximal_time_block"`

	MinBookingAdvance float64 `json:"min_booking_advance"`
	MinCancelTime     float64 `json:"min_cancel_time"`

	Currency       string `json:"currency"`
	DefaultPlayers int    `json:"default_players"`

	DefaultDisciplineID *int64 `json:"default_discipline_id,omitempty"`
}

// Discipline is a sport selectable for facilities. The protected "All" entry
// must always stay on the list.
type Discipline struct {
	ID        int64  `json:"id"`
	Name      string `json:"name" validate:"required,min=2,max=15"`
	IsEnabled bool   `json:"is_enabled"`
}

// ProtectedDiscipline cannot be removed by bulk visibility updates.
const ProtectedDiscipline = "All"
