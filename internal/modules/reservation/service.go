package reservation

import (
	"context"
	"time"

	"github.com/kokolodziejska/zagrane/internal/domain"
	"github.com/kokolodziejska/zagrane/internal/modules/pricing"
	"github.com/kokolodziejska/zagrane/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

// Service books facility time slots. Amounts are always recomputed from the
// price rules at booking time; totals sent by the client are ignored.
type Service struct {
	reservations ReservationRepositoryInterface
	quoter       Quoter
	settings     SettingsReader

	now func() time.Time
}

func NewService(reservations ReservationRepositoryInterface, quoter Quoter, settings SettingsReader) *Service {
	return &Service{
		reservations: reservations,
		quoter:       quoter,
		settings:     settings,
		now:          time.Now,
	}
}

func (s *Service) Quote(ctx context.Context, req QuoteRequest) (*pricing.QuoteResult, error) {
	date, startMinute, err := parseSlot(req.Date, req.Start)
	if err != nil {
		return nil, err
	}
	return s.quoter.QuoteReservation(ctx, req.FacilityID, date, startMinute, req.Duration, req.Split, req.Players)
}

func (s *Service) Create(ctx context.Context, clientID int64, req CreateRequest) (*domain.Reservation, error) {
	if !req.AcceptedRules {
		return nil, ErrRulesNotAccepted
	}

	date, startMinute, err := parseSlot(req.Date, req.Start)
	if err != nil {
		return nil, err
	}

	glob, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	start := slotStart(date, startMinute)
	minAdvance := time.Duration(glob.MinBookingAdvance * float64(time.Hour))
	if s.now().Add(minAdvance).After(start) {
		return nil, ErrTooSoon
	}

	quote, err := s.quoter.QuoteReservation(ctx, req.FacilityID, date, startMinute, req.Duration, req.Split, req.Players)
	if err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		ClientID:       clientID,
		FacilityID:     req.FacilityID,
		Date:           date,
		StartMinute:    startMinute,
		Duration:       req.Duration,
		Split:          req.Split,
		Players:        req.Players,
		AcceptedRules:  true,
		Total:          quote.Total,
		PerPersonTotal: quote.PerPerson,
	}

	// handlers bind-validate the request, but the service is also called
	// directly; check the entity's own constraints before persisting
	if fields := validator.Validate(res); fields != nil {
		return nil, ErrInvalidInput
	}

	if err := s.reservations.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ListMine returns the caller's upcoming or past reservations.
func (s *Service) ListMine(ctx context.Context, clientID int64, upcoming bool) ([]domain.Reservation, error) {
	today := s.today()
	return s.reservations.ListByClient(ctx, clientID, today, upcoming)
}

// ListForDay is the public schedule view; facilityID 0 means all facilities.
func (s *Service) ListForDay(ctx context.Context, day time.Time, facilityID int64) ([]domain.Reservation, error) {
	return s.reservations.ListForDay(ctx, day, facilityID)
}

// Cancel removes the caller's own reservation if the club's cancellation
// window still allows it.
func (s *Service) Cancel(ctx context.Context, clientID, reservationID int64) error {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if res.ClientID != clientID {
		return ErrNotOwner
	}

	glob, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}

	start := res.StartTime()
	now := s.now()
	if now.After(start) || now.Equal(start) {
		return ErrAlreadyStarted
	}

	deadline := start.Add(-time.Duration(glob.MinCancelTime * float64(time.Hour)))
	if now.After(deadline) {
		return ErrTooLate
	}

	return s.reservations.Delete(ctx, reservationID)
}

// AdminCancel removes any reservation that has not started yet.
func (s *Service) AdminCancel(ctx context.Context, reservationID int64) error {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if !s.now().Before(res.StartTime()) {
		return ErrAlreadyStarted
	}
	return s.reservations.Delete(ctx, reservationID)
}

func (s *Service) today() time.Time {
	n := s.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())
}

func parseSlot(dateStr, startStr string) (time.Time, int, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, 0, ErrInvalidInput
	}
	startMinute, err := domain.ParseMinute(startStr)
	if err != nil {
		return time.Time{}, 0, ErrInvalidInput
	}
	return date, startMinute, nil
}

func slotStart(date time.Time, startMinute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), startMinute/60, startMinute%60, 0, 0, time.Local)
}
