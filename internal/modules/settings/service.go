package settings

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

// Service owns the single club-wide settings record and the discipline list.
type Service struct {
	repo SettingsRepositoryInterface
}

func NewService(repo SettingsRepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) get(ctx context.Context) (*domain.Settings, error) {
	glob, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return glob, nil
}

// Summary is the public view served to the booking front end.
func (s *Service) Summary(ctx context.Context) (*SettingsResponse, error) {
	glob, err := s.get(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildSummary(ctx, glob)
}

// Full adds the admin-only fields on top of the summary.
func (s *Service) Full(ctx context.Context) (*FullSettingsResponse, error) {
	glob, err := s.get(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := s.buildSummary(ctx, glob)
	if err != nil {
		return nil, err
	}

	return &FullSettingsResponse{
		SettingsResponse: *summary,
		MinCancelTime:    glob.MinCancelTime,
		Currency:         glob.Currency,
	}, nil
}

func (s *Service) buildSummary(ctx context.Context, glob *domain.Settings) (*SettingsResponse, error) {
	disciplines, err := s.repo.ListDisciplines(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]string, 0, len(disciplines))
	for _, d := range disciplines {
		if d.IsEnabled {
			available = append(available, d.Name)
		}
	}

	var defaultName *string
	if glob.DefaultDisciplineID != nil {
		d, err := s.repo.GetDisciplineByID(ctx, *glob.DefaultDisciplineID)
		if err == nil {
			defaultName = &d.Name
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return &SettingsResponse{
		OpeningHour:          domain.FormatMinute(glob.OpeningMinute),
		ClosingHour:          domain.FormatMinute(glob.ClosingMinute),
		TimeBlock:            glob.TimeBlock,
		MinimalTimeBlock:     glob.MinimalTimeBlock,
		MaximalTimeBlock:     glob.MaximalTimeBlock,
		MinBookingAdvance:    glob.MinBookingAdvance,
		DefaultPlayers:       glob.DefaultPlayers,
		DefaultDiscipline:    defaultName,
		AvailableDisciplines: available,
	}, nil
}

func (s *Service) Update(ctx context.Context, req UpdateSettingsRequest) (*FullSettingsResponse, error) {
	glob, err := s.get(ctx)
	if err != nil {
		return nil, err
	}

	opening, err := domain.ParseMinute(req.OpeningHour)
	if err != nil {
		return nil, &ValidationError{Field: "opening_hour", Message: "Opening hour must be HH:MM"}
	}
	closing, err := domain.ParseMinute(req.ClosingHour)
	if err != nil {
		return nil, &ValidationError{Field: "closing_hour", Message: "Closing hour must be HH:MM"}
	}
	if closing < opening {
		return nil, &ValidationError{Field: "closing_hour", Message: "Closing hour cannot be before opening hour"}
	}

	if err := validateBlocks(req.TimeBlock, req.MinimalTimeBlock, req.MaximalTimeBlock); err != nil {
		return nil, err
	}

	if req.MinBookingAdvance < 0.25 {
		return nil, &ValidationError{Field: "min_booking_advance", Message: "Booking advance must be at least 15 minutes"}
	}
	if req.MinCancelTime < 2 {
		return nil, &ValidationError{Field: "min_cancel_time", Message: "Cancellation advance must be at least 2 hours"}
	}

	glob.OpeningMinute = opening
	glob.ClosingMinute = closing
	glob.TimeBlock = req.TimeBlock
	glob.MinimalTimeBlock = req.MinimalTimeBlock
	glob.MaximalTimeBlock = req.MaximalTimeBlock
	glob.MinBookingAdvance = req.MinBookingAdvance
	glob.MinCancelTime = req.MinCancelTime
	glob.Currency = strings.ToUpper(req.Currency)

	if err := s.repo.Update(ctx, glob); err != nil {
		return nil, err
	}

	return s.Full(ctx)
}

func (s *Service) ListDisciplines(ctx context.Context) ([]domain.Discipline, error) {
	return s.repo.ListDisciplines(ctx)
}

func (s *Service) AddDiscipline(ctx context.Context, req DisciplineRequest) (*domain.Discipline, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 || len(name) > 15 {
		return nil, &ValidationError{Field: "name", Message: "Discipline must be between 2 and 15 characters"}
	}

	if _, err := s.repo.GetDisciplineByName(ctx, name); err == nil {
		return nil, ErrDisciplineExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	d := &domain.Discipline{Name: name, IsEnabled: true}
	if err := s.repo.CreateDiscipline(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateDisciplines replaces the whole discipline list. The protected "All"
// entry and the current default discipline must both survive the update.
func (s *Service) UpdateDisciplines(ctx context.Context, req UpdateDisciplinesRequest) error {
	if len(req.Disciplines) == 0 {
		return ErrEmptyDisciplineList
	}

	glob, err := s.get(ctx)
	if err != nil {
		return err
	}

	hasProtected := false
	for _, d := range req.Disciplines {
		if d.Name == domain.ProtectedDiscipline {
			hasProtected = true
			break
		}
	}
	if !hasProtected {
		return ErrProtectedMissing
	}

	defaultName := ""
	if glob.DefaultDisciplineID != nil {
		def, err := s.repo.GetDisciplineByID(ctx, *glob.DefaultDisciplineID)
		if err != nil {
			return err
		}
		defaultName = def.Name

		hasDefault := false
		for _, d := range req.Disciplines {
			if d.Name == defaultName {
				hasDefault = true
				break
			}
		}
		if !hasDefault {
			return ErrDefaultMissing
		}
	}

	list := make([]domain.Discipline, 0, len(req.Disciplines))
	for _, d := range req.Disciplines {
		name := strings.TrimSpace(d.Name)
		if len(name) < 2 || len(name) > 15 {
			return &ValidationError{Field: "name", Message: "Discipline must be between 2 and 15 characters"}
		}
		list = append(list, domain.Discipline{Name: name, IsEnabled: d.IsEnabled})
	}

	return s.repo.ReplaceDisciplines(ctx, glob.ID, defaultName, list)
}

func (s *Service) SetDefaultDiscipline(ctx context.Context, req DefaultDisciplineRequest) error {
	glob, err := s.get(ctx)
	if err != nil {
		return err
	}

	d, err := s.repo.GetDisciplineByName(ctx, strings.TrimSpace(req.Name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDisciplineNotFound
		}
		return err
	}

	return s.repo.UpdateDefaultDiscipline(ctx, glob.ID, d.ID)
}

func (s *Service) SetDefaultPlayers(ctx context.Context, req DefaultPlayersRequest) error {
	glob, err := s.get(ctx)
	if err != nil {
		return err
	}
	if req.Players < 1 {
		return &ValidationError{Field: "players", Message: "Default player count must be at least 1"}
	}
	return s.repo.UpdateDefaultPlayers(ctx, glob.ID, req.Players)
}

// validateBlocks runs on minutes so the multiple-of checks stay exact.
func validateBlocks(timeBlock, minBlock, maxBlock float64) error {
	tb := toMinutes(timeBlock)
	minb := toMinutes(minBlock)
	maxb := toMinutes(maxBlock)

	switch {
	case tb < 15:
		return &ValidationError{Field: "time_block", Message: "Block must be at least 15 minutes"}
	case tb > 120:
		return &ValidationError{Field: "time_block", Message: "Block cannot exceed 120 minutes"}
	}

	switch {
	case minb < tb:
		return &ValidationError{Field: "minimal_time_block", Message: "Minimal booking time cannot be shorter than the block"}
	case minb%tb != 0:
		return &ValidationError{Field: "minimal_time_block", Message: "Minimal booking time must be a multiple of the block"}
	}

	switch {
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
