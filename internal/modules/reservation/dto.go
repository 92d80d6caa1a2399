package reservation

import "github.com/kokolodziejska/zagrane/internal/domain"

type QuoteRequest struct {
	FacilityID int64  `json:"facility_id" binding:"required"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Start      string `json:"start" binding:"required"` // HH:MM
	Duration   int    `json:"duration" binding:"required,gt=0"` // minutes
	Split      bool   `json:"split"`
	Players    int    `json:"players"`
}

type CreateRequest struct {
	FacilityID    int64  `json:"facility_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Start         string `json:"start" binding:"required"`
	Duration      int    `json:"duration" binding:"required,gt=0"`
	Split         bool   `json:"split"`
	Players       int    `json:"players" binding:"required,gte=1"`
	AcceptedRules bool   `json:"accepted_rules"`
}

type ReservationResponse struct {
	ID         int64 `json:"id"`
	ClientID   int64 `json:"client_id"`
	FacilityID int64 `json:"facility_id"`

	Date     string `json:"date"`
	Start    string `json:"start"`
	Duration int    `json:"duration"`

	Split   bool `json:"split"`
	Players int  `json:"players"`

	Total          float64 `json:"total"`
	PerPersonTotal float64 `json:"per_person_total"`
}

func toResponse(r domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:             r.ID,
		ClientID:       r.ClientID,
		FacilityID:     r.FacilityID,
		Date:           r.Date.Format("2006-01-02"),
		Start:          domain.FormatMinute(r.StartMinute),
		Duration:       r.Duration,
		Split:          r.Split,
		Players:        r.Players,
		Total:          r.Total,
		PerPersonTotal: r.PerPersonTotal,
	}
}
