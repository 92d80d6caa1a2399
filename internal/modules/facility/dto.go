package facility

import "github.com/kokolodziejska/zagrane/internal/domain"

type FacilityRequest struct {
	ID          int64  `json:"id" binding:"required,gte=1"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Discipline  string `json:"discipline" binding:"required"`

	OpeningHour string `json:"opening_hour" binding:"required"` // HH:MM
	ClosingHour string `json:"closing_hour" binding:"required"`

	TimeBlock        float64 `json:"time_block" binding:"required,gt=0"` // hours
	MinimalTimeBlock float64 `json:"minimal_time_block" binding:"required,gt=0"`
	MaximalTimeBlock float64 `json:"maximal_time_block" binding:"required,gt=0"`
}

type FacilityResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Discipline  string `json:"discipline"`
	Description string `json:"description"`

	OpeningHour string `json:"opening_hour"`
	ClosingHour string `json:"closing_hour"`

	TimeBlock        float64 `json:"time_block"`
	MinimalTimeBlock float64 `json:"minimal_time_block"`
	MaximalTimeBlock float64 `json:"maximal_time_block"`
}

func toResponse(f domain.Facility) FacilityResponse {
	return FacilityResponse{
		ID:               f.ID,
		Name:             f.Name,
		Discipline:       f.Discipline,
		Description:      f.Description,
		OpeningHour:      domain.FormatMinute(f.OpeningMinute),
		ClosingHour:      domain.FormatMinute(f.ClosingMinute),
		TimeBlock:        f.TimeBlock,
		MinimalTimeBlock: f.MinimalTimeBlock,
		MaximalTimeBlock: f.MaximalTimeBlock,
	}
}
