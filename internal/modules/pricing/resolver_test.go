package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

func rule(startMinute, endMinute, refDuration int, price float64) domain.PriceRule {
	return domain.PriceRule{
		FacilityID:        1,
		ValidFrom:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:           time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		DayMask:           domain.DayMaskAllDays,
		StartMinute:       startMinute,
		EndMinute:         endMinute,
		ReferenceDuration: refDuration,
		Price:             price,
		Currency:          "PLN",
	}
}

func TestResolve_SingleRule_LinearProration(t *testing.T) {
	// 40 per 60 minutes, booked for 90 minutes
	rules := []domain.PriceRule{rule(8*60, 16*60, 60, 40)}

	total, currency, err := Resolve(rules, 10*60, 90)

	assert.NoError(t, err)
	assert.InDelta(t, 60.0, total, 1e-9)
	assert.Equal(t, "PLN", currency)
}

func TestResolve_SingleRulePartialCoverage_Errors(t *testing.T) {
	// Rule covers 08:00-12:00 only; 10:00 for 240 minutes runs two hours past
	// it. Uncovered minutes must fail, not get charged at the rule's rate.
	rules := []domain.PriceRule{rule(8*60, 12*60, 60, 40)}

	_, _, err := Resolve(rules, 10*60, 240)

	assert.ErrorIs(t, err, ErrNoApplicableRule)
}

func TestResolve_SingleRuleStartsAfterWindow_Errors(t *testing.T) {
	rules := []domain.PriceRule{rule(8*60, 12*60, 60, 40)}

	_, _, err := Resolve(rules, 7*60, 120)

	assert.ErrorIs(t, err, ErrNoApplicableRule)
}

func TestResolve_TwoTiers_BlendedTotal(t *testing.T) {
	// Rule A: 08:00-12:00 at 40/60min, rule B: 12:00-16:00 at 30/60min.
	// 10:00 for 180 minutes: 120 min in A (80) + 60 min in B (30) = 110.
	rules := []domain.PriceRule{
		rule(8*60, 12*60, 60, 40),
		rule(12*60, 16*60, 60, 30),
	}

	total, _, err := Resolve(rules, 10*60, 180)

	assert.NoError(t, err)
	assert.InDelta(t, 110.0, total, 1e-9)
}

func TestResolve_OverlappingRules_EachMinuteChargedOnce(t *testing.T) {
	// The second rule's declared interval overlaps the first; the walk must
	// charge 08:00-12:00 at the first rate and only 12:00-14:00 at the second.
	rules := []domain.PriceRule{
		rule(8*60, 12*60, 60, 60),
		rule(10*60, 14*60, 60, 120),
	}

	total, _, err := Resolve(rules, 8*60, 360)

	assert.NoError(t, err)
	assert.InDelta(t, 4*60+2*120, total, 1e-9)
}

func TestResolve_NoRules_Errors(t *testing.T) {
	_, _, err := Resolve(nil, 10*60, 60)
	assert.ErrorIs(t, err, ErrNoApplicableRule)
}

func TestResolve_GapBetweenTiers_Errors(t *testing.T) {
	// 12:00-13:00 is uncovered; a partial total must not be produced.
	rules := []domain.PriceRule{
		rule(8*60, 12*60, 60, 40),
		rule(13*60, 16*60, 60, 30),
	}

	_, _, err := Resolve(rules, 10*60, 240)

	assert.ErrorIs(t, err, ErrNoApplicableRule)
}

func TestResolve_WindowEndsPastLastTier_Errors(t *testing.T) {
	rules := []domain.PriceRule{
		rule(8*60, 12*60, 60, 40),
		rule(12*60, 14*60, 60, 30),
	}

	_, _, err := Resolve(rules, 10*60, 300)

	assert.ErrorIs(t, err, ErrNoApplicableRule)
}

func TestResolve_NonPositiveDuration_Errors(t *testing.T) {
	rules := []domain.PriceRule{rule(8*60, 16*60, 60, 40)}

	_, _, err := Resolve(rules, 10*60, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = Resolve(rules, 10*60, -30)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestQuote_SplitDividesByPlayers(t *testing.T) {
	rules := []domain.PriceRule{rule(8*60, 16*60, 60, 40)}

	quote, err := Quote(rules, 10*60, 90, true, 4)

	assert.NoError(t, err)
	assert.InDelta(t, 60.0, quote.Total, 1e-9)
	assert.InDelta(t, 15.0, quote.PerPerson, 1e-9)
}

func TestQuote_SplitWithoutPlayers_Errors(t *testing.T) {
	rules := []domain.PriceRule{rule(8*60, 16*60, 60, 40)}

	_, err := Quote(rules, 10*60, 90, true, 0)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestQuote_RoundsHalfUp(t *testing.T) {
	// 10 per 60 minutes booked for 20 minutes = 3.333..., displayed as 3.33.
	// Per person over 3 players after a 50-minute booking of 10/60:
	// 8.333../3 = 2.777.. -> 2.78.
	rules := []domain.PriceRule{rule(8*60, 16*60, 60, 10)}

	quote, err := Quote(rules, 10*60, 20, false, 1)
	assert.NoError(t, err)
	assert.Equal(t, 3.33, quote.Total)

	quote, err = Quote(rules, 10*60, 50, true, 3)
	assert.NoError(t, err)
	assert.Equal(t, 2.78, quote.PerPerson)
}

func TestWeekdayBit_MondayFirst(t *testing.T) {
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) // a Monday
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, domain.DayMaskMonday, domain.WeekdayBit(monday.Weekday()))
	assert.Equal(t, domain.DayMaskSunday, domain.WeekdayBit(sunday.Weekday()))
}
