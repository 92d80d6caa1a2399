package facility

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

type mockFacilityRepo struct {
	mock.Mock
}

func (m *mockFacilityRepo) Create(ctx context.Context, f *domain.Facility) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *mockFacilityRepo) Update(ctx context.Context, f *domain.Facility) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *mockFacilityRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockFacilityRepo) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Facility), args.Error(1)
}

func (m *mockFacilityRepo) List(ctx context.Context) ([]domain.Facility, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Facility), args.Error(1)
}

func (m *mockFacilityRepo) NextFreeID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
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

type mockReservationReader struct {
	mock.Mock
}

func (m *mockReservationReader) HasUpcomingForFacility(ctx context.Context, facilityID int64, day time.Time) (bool, error) {
	args := m.Called(ctx, facilityID, day)
	return args.Bool(0), args.Error(1)
}

func clubSettings() *domain.Settings {
	return &domain.Settings{
		ID:               1,
		OpeningMinute:    8 * 60,
		ClosingMinute:    22 * 60,
		TimeBlock:        0.5,
		MinimalTimeBlock: 0.5,
		MaximalTimeBlock: 3,
	}
}

func validFacilityRequest() FacilityRequest {
	return FacilityRequest{
		ID:               1,
		Name:             "Court one",
		Description:      "Indoor tennis court",
		Discipline:       "Tennis",
		OpeningHour:      "09:00",
		ClosingHour:      "21:00",
		TimeBlock:        0.5,
		MinimalTimeBlock: 1,
		MaximalTimeBlock: 2,
	}
}

func newTestService() (*Service, *mockFacilityRepo, *mockSettingsReader, *mockReservationReader) {
	facilities := new(mockFacilityRepo)
	settings := new(mockSettingsReader)
	reservations := new(mockReservationReader)
	return NewService(facilities, settings, reservations), facilities, settings, reservations
}

func TestCreate_Success(t *testing.T) {
	svc, facilities, settings, _ := newTestService()

	settings.On("Get", mock.Anything).Return(clubSettings(), nil)
	facilities.On("Create", mock.Anything, mock.MatchedBy(func(f *domain.Facility) bool {
		return f.Name == "Court one" && f.OpeningMinute == 9*60 && f.ClosingMinute == 21*60
	})).Return(nil)

	f, err := svc.Create(context.Background(), validFacilityRequest())

	assert.NoError(t, err)
	assert.Equal(t, "Tennis", f.Discipline)
	facilities.AssertExpectations(t)
}

func TestCreate_OpensBeforeClub(t *testing.T) {
	svc, facilities, settings, _ := newTestService()

	settings.On("Get", mock.Anything).Return(clubSettings(), nil)

	req := validFacilityRequest()
	req.OpeningHour = "07:00"

	_, err := svc.Create(context.Background(), req)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "opening_hour", validationErr.Field)
	facilities.AssertNotCalled(t, "Create")
}

func TestCreate_BlockOffClubGrid(t *testing.T) {
	svc, _, settings, _ := newTestService()

	settings.On("Get", mock.Anything).Return(clubSettings(), nil)

	req := validFacilityRequest()
	req.TimeBlock = 0.75 // 45 min, not a multiple of the 30 min club block

	_, err := svc.Create(context.Background(), req)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "time_block", validationErr.Field)
}

func TestCreate_MinimalShorterThanBlock(t *testing.T) {
	svc, _, settings, _ := newTestService()

	settings.On("Get", mock.Anything).Return(clubSettings(), nil)

	req := validFacilityRequest()
	req.TimeBlock = 1
	req.MinimalTimeBlock = 0.5

	_, err := svc.Create(context.Background(), req)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "minimal_time_block", validationErr.Field)
}

func TestCreate_MaximalAboveClubMaximum(t *testing.T) {
	svc, _, settings, _ := newTestService()

	settings.On("Get", mock.Anything).Return(clubSettings(), nil)

	req := validFacilityRequest()
	req.MaximalTimeBlock = 4

	_, err := svc.Create(context.Background(), req)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "maximal_time_block", validationErr.Field)
}

func TestCreate_NameTooShort(t *testing.T) {
	svc, _, settings, _ := newTestService()

	settings.On("Get", mock.Anything).Return(clubSettings(), nil)

	req := validFacilityRequest()
	req.Name = "ab"

	_, err := svc.Create(context.Background(), req)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)
}

func TestDelete_BlockedByUpcomingReservations(t *testing.T) {
	svc, facilities, _, reservations := newTestService()

	facilities.On("GetByID", mock.Anything, int64(5)).Return(&domain.Facility{ID: 5}, nil)
	reservations.On("HasUpcomingForFacility", mock.Anything, int64(5), mock.Anything).Return(true, nil)

	err := svc.Delete(context.Background(), 5)

	assert.ErrorIs(t, err, ErrHasReservations)
	facilities.AssertNotCalled(t, "Delete")
}

func TestDelete_Success(t *testing.T) {
	svc, facilities, _, reservations := newTestService()

	facilities.On("GetByID", mock.Anything, int64(5)).Return(&domain.Facility{ID: 5}, nil)
	reservations.On("HasUpcomingForFacility", mock.Anything, int64(5), mock.Anything).Return(false, nil)
	facilities.On("Delete", mock.Anything, int64(5)).Return(nil)

	err := svc.Delete(context.Background(), 5)

	assert.NoError(t, err)
	facilities.AssertExpectations(t)
}
