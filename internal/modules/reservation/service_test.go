package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kokolodziejska/zagrane/internal/domain"
	"github.com/kokolodziejska/zagrane/internal/modules/pricing"
)

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockReservationRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockReservationRepo) ListByClient(ctx context.Context, clientID int64, day time.Time, upcoming bool) ([]domain.Reservation, error) {
	args := m.Called(ctx, clientID, day, upcoming)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *mockReservationRepo) ListForDay(ctx context.Context, day time.Time, facilityID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, day, facilityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

type mockQuoter struct {
	mock.Mock
}

func (m *mockQuoter) QuoteReservation(ctx context.Context, facilityID int64, date time.Time, startMinute, durationMinutes int, split bool, players int) (*pricing.QuoteResult, error) {
	args := m.Called(ctx, facilityID, date, startMinute, durationMinutes, split, players)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.QuoteResult), args.Error(1)
}

type mockSettingsReader struct {
	mock.Mock
}

func (m *mockSettingsReader) Get(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func newTestService(now time.Time) (*Service, *mockReservationRepo, *mockQuoter, *mockSettingsReader) {
	repo := new(mockReservationRepo)
	quoter := new(mockQuoter)
	settings := new(mockSettingsReader)
	svc := NewService(repo, quoter, settings)
	svc.now = func() time.Time { return now }
	return svc, repo, quoter, settings
}

func clubSettings() *domain.Settings {
	return &domain.Settings{
		ID:                1,
		MinBookingAdvance: 0.5,
		MinCancelTime:     2,
	}
}

func TestCreate_RecomputesTotalsFromRules(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	svc, repo, quoter, settings := newTestService(now)

	settings.On("Get", mock.Anything).Return(clubSettings(), nil)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	quoter.On("QuoteReservation", mock.Anything, int64(3), date, 10*60, 90, true, 3).
		Return(&pricing.QuoteResult{Total: 60, PerPerson: 20, Currency: "PLN"}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.ClientID == 7 && r.Total == 60 && r.PerPersonTotal == 20 && r.AcceptedRules
	})).Return(nil)

	res, err := svc.Create(context.Background(), 7, CreateRequest{
		FacilityID:    3,
		Date:          "2026-09-01",
		Start:         "10:00",
		Duration:      90,
		Split:         true,
		Players:       3,
		AcceptedRules: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, 60.0, res.Total)
	repo.AssertExpectations(t)
}

func TestCreate_RequiresAcceptedRules(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	svc, repo, _, _ := newTestService(now)

	_, err := svc.Create(context.Background(), 7, CreateRequest{
		FacilityID:    3,
		Date:          "2026-09-01",
		Start:         "10:00",
		Duration:      90,
		Players:       2,
		AcceptedRules: false,
	})

	assert.ErrorIs(t, err, ErrRulesNotAccepted)
	repo.AssertNotCalled(t, "Create")
}

func TestCreate_RejectsZeroPlayers(t *testing.T) {
	// Without a split the quote ignores the player count, so the entity
	// check has to catch it before the booking is persisted.
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	svc, repo, quoter, settings := newTestService(now)

	settings.On("Get", mock.Anything).Return(clubSettings(), nil)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	quoter.On("QuoteReservation", mock.Anything, int64(3), date, 10*60, 60, false, 0).
		Return(&pricing.QuoteResult{Total: 40, PerPerson: 40, Currency: "PLN"}, nil)

	_, err := svc.Create(context.Background(), 7, CreateRequest{
		FacilityID:    3,
		Date:          "2026-09-01",
		Start:         "10:00",
		Duration:      60,
		Players:       0,
		AcceptedRules: true,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "Create")
}

func TestCreate_RejectsBookingInsideAdvanceWindow(t *testing.T) {
	// Slot starts 10:00 today, minimum advance is 30 minutes, now is 09:45.
	now := time.Date(2026, 9, 1, 9, 45, 0, 0, time.Local)
	svc, repo, _, settings := newTestService(now)

	settings.On("Get", mock.Anything).Return(clubSettings(), nil)

	_, err := svc.Create(context.Background(), 7, CreateRequest{
		FacilityID:    3,
		Date:          "2026-09-01",
		Start:         "10:00",
		Duration:      60,
		Players:       1,
		AcceptedRules: true,
	})

	assert.ErrorIs(t, err, ErrTooSoon)
	repo.AssertNotCalled(t, "Create")
}

func TestCancel_WithinWindow(t *testing.T) {
	// Reservation starts 18:00, cancel window 2h, now 15:00.
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.Local)
	svc, repo, _, settings := newTestService(now)

	settings.On("Get", mock.Anything).Return(clubSettings(), nil)
	repo.On("GetByID", mock.Anything, int64(11)).Return(&domain.Reservation{
		ID:          11,
		ClientID:    7,
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
		StartMinute: 18 * 60,
		Duration:    60,
	}, nil)
	repo.On("Delete", mock.Anything, int64(11)).Return(nil)

	err := svc.Cancel(context.Background(), 7, 11)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCancel_PastDeadline(t *testing.T) {
	// Now 17:00, reservation 18:00, window 2h: deadline 16:00 already passed.
	now := time.Date(2026, 9, 1, 17, 0, 0, 0, time.Local)
	svc, repo, _, settings := newTestService(now)

	settings.On("Get", mock.Anything).Return(clubSettings(), nil)
	repo.On("GetByID", mock.Anything, int64(11)).Return(&domain.Reservation{
		ID:          11,
		ClientID:    7,
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
		StartMinute: 18 * 60,
	}, nil)

	err := svc.Cancel(context.Background(), 7, 11)

	assert.ErrorIs(t, err, ErrTooLate)
	repo.AssertNotCalled(t, "Delete")
}

func TestCancel_SomeoneElsesReservation(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	svc, repo, _, _ := newTestService(now)

	repo.On("GetByID", mock.Anything, int64(11)).Return(&domain.Reservation{
		ID:       11,
		ClientID: 99,
	}, nil)

	err := svc.Cancel(context.Background(), 7, 11)

	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestAdminCancel_StartedReservation(t *testing.T) {
	now := time.Date(2026, 9, 1, 19, 0, 0, 0, time.Local)
	svc, repo, _, _ := newTestService(now)

	repo.On("GetByID", mock.Anything, int64(11)).Return(&domain.Reservation{
		ID:          11,
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
		StartMinute: 18 * 60,
	}, nil)

	err := svc.AdminCancel(context.Background(), 11)

	assert.ErrorIs(t, err, ErrAlreadyStarted)
	repo.AssertNotCalled(t, "Delete")
}

func TestAdminCancel_Upcoming(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	svc, repo, _, _ := newTestService(now)

	repo.On("GetByID", mock.Anything, int64(11)).Return(&domain.Reservation{
		ID:          11,
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
		StartMinute: 18 * 60,
	}, nil)
	repo.On("Delete", mock.Anything, int64(11)).Return(nil)

	err := svc.AdminCancel(context.Background(), 11)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
