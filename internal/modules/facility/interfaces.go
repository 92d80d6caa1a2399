package facility

import (
	"context"
	"time"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

// FacilityRepositoryInterface — only the methods the facility service uses
type FacilityRepositoryInterface interface {
	Create(ctx context.Context, f *domain.Facility) error
	Update(ctx context.Context, f *domain.Facility) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	List(ctx context.Context) ([]domain.Facility, error)
	NextFreeID(ctx context.Context) (int64, error)
}

// SettingsReader loads the club-wide settings facilities are checked against.
type SettingsReader interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// ReservationReader checks for bookings that block facility deletion.
type ReservationReader interface {
	HasUpcomingForFacility(ctx context.Context, facilityID int64, day time.Time) (bool, error)
}
