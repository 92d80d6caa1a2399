package pricing

import (
	"math"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

// QuoteResult is a computed charge for one reservation window.
type QuoteResult struct {
	Total     float64 `json:"total"`
	PerPerson float64 `json:"per_person"`
	Currency  string  `json:"currency"`
}

// Resolve computes the blended charge for the window starting at startMinute
// (minutes since midnight) and lasting durationMinutes, given the price rules
// that match the facility, date and window, ordered by (StartMinute,
// EndMinute) ascending.
//
// Each rule charges linear proration against its reference duration. The walk
// attributes every minute to exactly one rule: a cursor starts at the window
// start and each rule charges only the still-uncovered overlap, so overlapping
// declared intervals never double-charge. A window minute not covered by any
// rule is an error, never a silent partial total.
func Resolve(rules []domain.PriceRule, startMinute, durationMinutes int) (float64, string, error) {
	if durationMinutes <= 0 {
		return 0, "", ErrInvalidInput
	}
	if len(rules) == 0 {
		return 0, "", ErrNoApplicableRule
	}

	currency := rules[0].Currency

	windowEnd := startMinute + durationMinutes
	cursor := startMinute
	total := 0.0

	for _, r := range rules {
		if cursor >= windowEnd {
			break
		}
		if r.EndMinute <= cursor {
			continue
		}
		if r.StartMinute > cursor {
			// uncovered minutes between the previous tier and this one
			return 0, "", ErrNoApplicableRule
		}
		if r.ReferenceDuration <= 0 {
			return 0, "", ErrInvalidRule
		}

		overlap := min(windowEnd, r.EndMinute) - cursor
		total += float64(overlap) * r.Price / float64(r.ReferenceDuration)
		cursor = min(windowEnd, r.EndMinute)
	}

	if cursor < windowEnd {
		return 0, "", ErrNoApplicableRule
	}

	return total, currency, nil
}

// Quote applies the party-split step and currency rounding on top of Resolve.
func Quote(rules []domain.PriceRule, startMinute, durationMinutes int, split bool, players int) (*QuoteResult, error) {
	total, currency, err := Resolve(rules, startMinute, durationMinutes)
	if err != nil {
		return nil, err
	}

	perPerson := total
	if split {
		if players <= 0 {
			return nil, ErrInvalidInput
		}
		perPerson = total / float64(players)
	}

	return &QuoteResult{
		Total:     roundCurrency(total),
		PerPerson: roundCurrency(perPerson),
		Currency:  currency,
	}, nil
}

// roundCurrency rounds half-up to 2 decimal places for display.
func roundCurrency(x float64) float64 {
	return math.Round(x*100) / 100
}
