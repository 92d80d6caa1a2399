package facility

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

// Service validates facilities against the club-wide settings and owns their
// lifecycle. Validation mirrors the front-desk rules: a facility can only
// tighten the club's opening window and must keep its blocks on the club's
// grid.
type Service struct {
	facilities   FacilityRepositoryInterface
	settings     SettingsReader
	reservations ReservationReader
}

func NewService(facilities FacilityRepositoryInterface, settings SettingsReader, reservations ReservationReader) *Service {
	return &Service{facilities: facilities, settings: settings, reservations: reservations}
}

func (s *Service) List(ctx context.Context) ([]domain.Facility, error) {
	return s.facilities.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Facility, error) {
	return s.facilities.GetByID(ctx, id)
}

func (s *Service) NextFreeID(ctx context.Context) (int64, error) {
	return s.facilities.NextFreeID(ctx)
}

func (s *Service) Create(ctx context.Context, req FacilityRequest) (*domain.Facility, error) {
	f, err := s.buildValidated(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.facilities.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) Update(ctx context.Context, req FacilityRequest) (*domain.Facility, error) {
	if _, err := s.facilities.GetByID(ctx, req.ID); err != nil {
		return nil, err
	}

	f, err := s.buildValidated(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.facilities.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Delete refuses to remove a facility that still has reservations today or
// later.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.facilities.GetByID(ctx, id); err != nil {
		return err
	}

	today := time.Now().Truncate(24 * time.Hour)
	busy, err := s.reservations.HasUpcomingForFacility(ctx, id, today)
	if err != nil {
		return err
	}
	if busy {
		return ErrHasReservations
	}

	return s.facilities.Delete(ctx, id)
}

func (s *Service) buildValidated(ctx context.Context, req FacilityRequest) (*domain.Facility, error) {
	glob, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if len(name) < 3 || len(name) > 25 {
		return nil, &ValidationError{Field: "name", Message: "Name must be between 3 and 25 characters"}
	}

	desc := strings.TrimSpace(req.Description)
	if len(desc) < 3 || len(desc) > 40 {
		return nil, &ValidationError{Field: "description", Message: "Description must be between 3 and 40 characters"}
	}

	disc := strings.TrimSpace(req.Discipline)
	if len(disc) < 2 || len(disc) > 15 {
		return nil, &ValidationError{Field: "discipline", Message: "Discipline must be between 2 and 15 characters"}
	}

	opening, err := domain.ParseMinute(req.OpeningHour)
	if err != nil {
		return nil, &ValidationError{Field: "opening_hour", Message: "Opening hour must be HH:MM"}
	}
	closing, err := domain.ParseMinute(req.ClosingHour)
	if err != nil {
		return nil, &ValidationError{Field: "closing_hour", Message: "Closing hour must be HH:MM"}
	}

	if err := validateHours(opening, closing, glob); err != nil {
		return nil, err
	}
	if err := validateBlocks(req.TimeBlock, req.MinimalTimeBlock, req.MaximalTimeBlock, glob); err != nil {
		return nil, err
	}

	return &domain.Facility{
		ID:               req.ID,
		Name:             name,
		Description:      desc,
		Discipline:       disc,
		OpeningMinute:    opening,
		ClosingMinute:    closing,
		TimeBlock:        req.TimeBlock,
		MinimalTimeBlock: req.MinimalTimeBlock,
		MaximalTimeBlock: req.MaximalTimeBlock,
	}, nil
}

func validateHours(opening, closing int, glob *domain.Settings) error {
	if opening < glob.OpeningMinute {
		return &ValidationError{Field: "opening_hour", Message: "Facility cannot open before the club opens"}
	}
	if closing > glob.ClosingMinute {
		return &ValidationError{Field: "closing_hour", Message: "Facility cannot close after the club closes"}
	}
	if closing < opening {
		return &ValidationError{Field: "closing_hour", Message: "Closing hour cannot be before opening hour"}
	}
	return nil
}

// validateBlocks runs on minutes to keep the multiple-of checks exact.
func validateBlocks(timeBlock, minBlock, maxBlock float64, glob *domain.Settings) error {
	tb := toMinutes(timeBlock)
	gtb := toMinutes(glob.TimeBlock)
	minb := toMinutes(minBlock)
	gmin := toMinutes(glob.MinimalTimeBlock)
	maxb := toMinutes(maxBlock)
	gmax := toMinutes(glob.MaximalTimeBlock)

	switch {
	case tb < gtb:
		return &ValidationError{Field: "time_block", Message: "Facility block cannot be shorter than the club block"}
	case tb < 15:
		return &ValidationError{Field: "time_block", Message: "Block must be at least 15 minutes"}
	case tb > 120:
		return &ValidationError{Field: "time_block", Message: "Block cannot exceed 120 minutes"}
	case gtb > 0 && tb%gtb != 0:
		return &ValidationError{Field: "time_block", Message: "Facility block must be a multiple of the club block"}
	}

	switch {
	case minb < gmin:
		return &ValidationError{Field: "minimal_time_block", Message: "Minimal booking time cannot be shorter than the club minimum"}
	case minb < tb:
		return &ValidationError{Field: "minimal_time_block", Message: "Minimal booking time cannot be shorter than the block"}
	case minb%tb != 0:
		return &ValidationError{Field: "minimal_time_block", Message: "Minimal booking time must be a multiple of the block"}
	}

	switch {
	case maxb > gmax:
		return &ValidationError{Field: "maximal_time_block", Message: "Maximal booking time cannot exceed the club maximum"}
	case minb > maxb:
		return &ValidationError{Field: "maximal_time_block", Message: "Maximal booking time must be at least the minimal time"}
	case maxb%tb != 0:
		return &ValidationError{Field: "maximal_time_block", Message: "Maximal booking time must be a multiple of the block"}
	}

	return nil
}

func toMinutes(hours float64) int {
	return int(hours * 60)
}
