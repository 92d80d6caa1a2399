package pricing

type RuleRequest struct {
	PriceTable int   `json:"price_table" binding:"required,gte=1"`
	FacilityID int64 `json:"facility_id" binding:"required"`

	ValidFrom string `json:"valid_from" binding:"required"` // YYYY-MM-DD
	ValidTo   string `json:"valid_to" binding:"required"`

	DayMask     int    `json:"day_mask" binding:"required,gte=1,lte=127"`
	StartTime   string `json:"start_time" binding:"required"` // HH:MM
	EndTime     string `json:"end_time" binding:"required"`

	ReferenceDuration int      `json:"reference_duration" binding:"required,gt=0"`
	Price             float64  `json:"price" binding:"gte=0"`
	PriceWithPass     *float64 `json:"price_with_pass,omitempty"`
	Currency          string   `json:"currency" binding:"required,len=3"`
}

type RuleResponse struct {
	ID         int64 `json:"id"`
	PriceTable int   `json:"price_table"`
	FacilityID int64 `json:"facility_id"`

	ValidFrom string `json:"valid_from"`
	ValidTo   string `json:"valid_to"`

	DayMask   int    `json:"day_mask"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	ReferenceDuration int      `json:"reference_duration"`
	Price             float64  `json:"price"`
	PriceWithPass     *float64 `json:"price_with_pass,omitempty"`
	Currency          string   `json:"currency"`
}
