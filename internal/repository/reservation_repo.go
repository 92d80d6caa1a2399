package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	ClientID       int64     `gorm:"column:client_id;index"`
	FacilityID     int64     `gorm:"column:facility_id;index"`
	Date           time.Time `gorm:"column:date"`
	StartMinute    int       `gorm:"column:start_minute"`
	Duration       int       `gorm:"column:duration"`
	Split          bool      `gorm:"column:split"`
	Players        int       `gorm:"column:players"`
	AcceptedRules  bool      `gorm:"column:accepted_rules"`
	Total          float64   `gorm:"column:total"`
	PerPersonTotal float64   `gorm:"column:per_person_total"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	return &domain.Reservation{
		ID:             m.ID,
		ClientID:       m.ClientID,
		FacilityID:     m.FacilityID,
		Date:           m.Date,
		StartMinute:    m.StartMinute,
		Duration:       m.Duration,
		Split:          m.Split,
		Players:        m.Players,
		AcceptedRules:  m.AcceptedRules,
		Total:          m.Total,
		PerPersonTotal: m.PerPersonTotal,
		CreatedAt:      m.CreatedAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	return reservationModel{
		ID:             r.ID,
		ClientID:       r.ClientID,
		FacilityID:     r.FacilityID,
		Date:           r.Date,
		StartMinute:    r.StartMinute,
		Duration:       r.Duration,
		Split:          r.Split,
		Players:        r.Players,
		AcceptedRules:  r.AcceptedRules,
		Total:          r.Total,
		PerPersonTotal: r.PerPersonTotal,
		CreatedAt:      r.CreatedAt,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&reservationModel{}, id).Error
}

// ListByClient returns a client's reservations on or after (upcoming=true) or
// before (upcoming=false) the given day.
func (r *ReservationRepository) ListByClient(ctx context.Context, clientID int64, day time.Time, upcoming bool) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).Where("client_id = ?", clientID)
	if upcoming {
		q = q.Where("date >= ?", day)
	} else {
		q = q.Where("date < ?", day)
	}

	var ms []reservationModel
	tx := q.Order("date").Order("start_minute").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservations(ms), nil
}

// ListForDay returns all reservations on a date, optionally filtered to one
// facility, ordered by facility then start time.
func (r *ReservationRepository) ListForDay(ctx context.Context, day time.Time, facilityID int64) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).Where("date = ?", day)
	if facilityID > 0 {
		q = q.Where("facility_id = ?", facilityID)
	}

	var ms []reservationModel
	tx := q.Order("facility_id").Order("start_minute").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservations(ms), nil
}

// HasUpcomingForFacility reports whether any reservation on or after day still
// references the facility. Facility deletion is blocked while this holds.
func (r *ReservationRepository) HasUpcomingForFacility(ctx context.Context, facilityID int64, day time.Time) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("facility_id = ?", facilityID).
		Where("date >= ?", day).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func toDomainReservations(ms []reservationModel) []domain.Reservation {
	out := make([]domain.Reservation, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReservation(m))
	}
	return out
}
