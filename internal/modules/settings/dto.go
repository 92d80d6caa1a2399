package settings

type UpdateSettingsRequest struct {
	OpeningHour string `json:"opening_hour" binding:"required"` // HH:MM
	ClosingHour string `json:"closing_hour" binding:"required"`

	TimeBlock        float64 `json:"time_block" binding:"required,gt=0"` // hours
	MinimalTimeBlock float64 `json:"minimal_time_block" binding:"required,gt=0"`
	MaximalTimeBlock float64 `json:"maximal_time_block" binding:"required,gt=0"`

	MinBookingAdvance float64 `json:"min_booking_advance" binding:"required,gt=0"`
	MinCancelTime     float64 `json:"min_cancel_time" binding:"required,gt=0"`

	Currency string `json:"currency" binding:"required,len=3"`
}

// SettingsResponse is the public summary served to the booking front end.
type SettingsResponse struct {
	OpeningHour string `json:"opening_hour"`
	ClosingHour string `json:"closing_hour"`

	TimeBlock        float64 `json:"time_block"`
	MinimalTimeBlock float64 `json:"minimal_time_block"`
	MaximalTimeBlock float64 `json:"maximal_time_block"`

	MinBookingAdvance float64 `json:"min_booking_advance"`

	DefaultPlayers       int      `json:"default_players"`
	DefaultDiscipline    *string  `json:"default_discipline,omitempty"`
	AvailableDisciplines []string `json:"available_disciplines"`
}

// FullSettingsResponse adds the admin-only fields.
type FullSettingsResponse struct {
	SettingsResponse
	MinCancelTime float64 `json:"min_cancel_time"`
	Currency      string  `json:"currency"`
}

type DisciplineRequest struct {
	Name string `json:"name" binding:"required"`
}

type DisciplineVisibility struct {
	Name      string `json:"name" binding:"required"`
	IsEnabled bool   `json:"is_enabled"`
}

type UpdateDisciplinesRequest struct {
	Disciplines []DisciplineVisibility `json:"disciplines" binding:"required"`
}

type DisciplineResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsEnabled bool   `json:"is_enabled"`
}

type DefaultPlayersRequest struct {
	Players int `json:"players" binding:"required,gte=1"`
}

type DefaultDisciplineRequest struct {
	Name string `json:"name" binding:"required"`
}
