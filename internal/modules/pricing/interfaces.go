package pricing

import (
	"context"
	"time"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

// PriceRepositoryInterface — only the methods the pricing service uses
type PriceRepositoryInterface interface {
	List(ctx context.Context) ([]domain.PriceRule, error)
	FindApplicable(ctx context.Context, facilityID int64, date time.Time, startMinute, endMinute int) ([]domain.PriceRule, error)
	GetByID(ctx context.Context, id int64) (*domain.PriceRule, error)
	Create(ctx context.Context, rule *domain.PriceRule) error
	Update(ctx context.Context, rule *domain.PriceRule) error
	Delete(ctx context.Context, id int64) error
	CurrenciesForFacility(ctx context.Context, facilityID int64) ([]string, error)
}

// FacilityReader checks that a rule's facility exists.
type FacilityReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}
