package reservation

import (
	"context"
	"time"

	"github.com/kokolodziejska/zagrane/internal/domain"
	"github.com/kokolodziejska/zagrane/internal/modules/pricing"
)

// ReservationRepositoryInterface — only the methods the reservation service uses
type ReservationRepositoryInterface interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
	ListByClient(ctx context.Context, clientID int64, day time.Time, upcoming bool) ([]domain.Reservation, error)
	ListForDay(ctx context.Context, day time.Time, facilityID int64) ([]domain.Reservation, error)
}

// Quoter computes the charge for a candidate booking window.
type Quoter interface {
	QuoteReservation(ctx context.Context, facilityID int64, date time.Time, startMinute, durationMinutes int, split bool, players int) (*pricing.QuoteResult, error)
}

// SettingsReader loads the club settings for advance and cancel windows.
type SettingsReader interface {
	Get(ctx context.Context) (*domain.Settings, error)
}
