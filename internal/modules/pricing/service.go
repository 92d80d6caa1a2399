package pricing

import (
	"context"
	"time"

	"github.com/kokolodziejska/zagrane/internal/config"
	"github.com/kokolodziejska/zagrane/internal/domain"
)

const dateLayout = "2006-01-02"

// Service owns price rules and computes reservation quotes. The resolver
// itself is pure; the service only fetches the matching rules and feeds it.
type Service struct {
	rules      PriceRepositoryInterface
	facilities FacilityReader
	priceDocs  []config.PriceTableDoc
}

func NewService(rules PriceRepositoryInterface, facilities FacilityReader, priceDocs []config.PriceTableDoc) *Service {
	return &Service{rules: rules, facilities: facilities, priceDocs: priceDocs}
}

func (s *Service) ListRules(ctx context.Context) ([]domain.PriceRule, error) {
	return s.rules.List(ctx)
}

func (s *Service) PriceTableDocs() []config.PriceTableDoc {
	return s.priceDocs
}

// QuoteReservation fetches the rules matching the facility, date and window
// and resolves the blended charge.
func (s *Service) QuoteReservation(ctx context.Context, facilityID int64, date time.Time, startMinute, durationMinutes int, split bool, players int) (*QuoteResult, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidInput
	}

	if _, err := s.facilities.GetByID(ctx, facilityID); err != nil {
		return nil, err
	}

	rules, err := s.rules.FindApplicable(ctx, facilityID, date, startMinute, startMinute+durationMinutes)
	if err != nil {
		return nil, err
	}

	return Quote(rules, startMinute, durationMinutes, split, players)
}

func (s *Service) CreateRule(ctx context.Context, req RuleRequest) (*domain.PriceRule, error) {
	rule, err := s.ruleFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.rules.Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *Service) UpdateRule(ctx context.Context, id int64, req RuleRequest) (*domain.PriceRule, error) {
	existing, err := s.rules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rule, err := s.ruleFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	rule.ID = existing.ID

	if err := s.rules.Update(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *Service) DeleteRule(ctx context.Context, id int64) error {
	if _, err := s.rules.GetByID(ctx, id); err != nil {
		return err
	}
	return s.rules.Delete(ctx, id)
}

func (s *Service) ruleFromRequest(ctx context.Context, req RuleRequest) (*domain.PriceRule, error) {
	if _, err := s.facilities.GetByID(ctx, req.FacilityID); err != nil {
		return nil, err
	}

	validFrom, err := time.Parse(dateLayout, req.ValidFrom)
	if err != nil {
		return nil, ErrInvalidRule
	}
	validTo, err := time.Parse(dateLayout, req.ValidTo)
	if err != nil {
		return nil, ErrInvalidRule
	}
	if validTo.Before(validFrom) {
		return nil, ErrInvalidRule
	}

	startMinute, err := domain.ParseMinute(req.StartTime)
	if err != nil {
		return nil, ErrInvalidRule
	}
	endMinute, err := domain.ParseMinute(req.EndTime)
	if err != nil {
		return nil, ErrInvalidRule
	}
	if startMinute >= endMinute {
		return nil, ErrInvalidRule
	}

	// One currency per facility, checked at write time
	currencies, err := s.rules.CurrenciesForFacility(ctx, req.FacilityID)
	if err != nil {
		return nil, err
	}
	for _, c := range currencies {
		if c != req.Currency {
			return nil, ErrCurrencyMismatch
		}
	}

	return &domain.PriceRule{
		PriceTable:        req.PriceTable,
		FacilityID:        req.FacilityID,
		ValidFrom:         validFrom,
		ValidTo:           validTo,
		DayMask:           req.DayMask,
		StartMinute:       startMinute,
		EndMinute:         endMinute,
		ReferenceDuration: req.ReferenceDuration,
		Price:             req.Price,
		PriceWithPass:     req.PriceWithPass,
		Currency:          req.Currency,
	}, nil
}

func toRuleResponse(r domain.PriceRule) RuleResponse {
	return RuleResponse{
		ID:                r.ID,
		PriceTable:        r.PriceTable,
		FacilityID:        r.FacilityID,
		ValidFrom:         r.ValidFrom.Format(dateLayout),
		ValidTo:           r.ValidTo.Format(dateLayout),
		DayMask:           r.DayMask,
		StartTime:         domain.FormatMinute(r.StartMinute),
		EndTime:           domain.FormatMinute(r.EndMinute),
		ReferenceDuration: r.ReferenceDuration,
		Price:             r.Price,
		PriceWithPass:     r.PriceWithPass,
		Currency:          r.Currency,
	}
}
