package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

type FacilityRepository struct {
	db *gorm.DB
}

func NewFacilityRepository(db *gorm.DB) *FacilityRepository {
	return &FacilityRepository{db: db}
}

type facilityModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	Name             string    `gorm:"column:name"`
	Discipline       string    `gorm:"column:discipline"`
	Description      string    `gorm:"column:description"`
	OpeningMinute    int       `gorm:"column:opening_minute"`
	ClosingMinute    int       `gorm:"column:closing_minute"`
	TimeBlock        float64   `gorm:"column:time_block"`
	MinimalTimeBlock float64   `gorm:"column:minimal_time_block"`
	MaximalTimeBlock float64   `gorm:"column:maximal_time_block"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (facilityModel) TableName() string { return "facilities" }

func toDomainFacility(m facilityModel) *domain.Facility {
	return &domain.Facility{
		ID:               m.ID,
		Name:             m.Name,
		Discipline:       m.Discipline,
		Description:      m.Description,
		OpeningMinute:    m.OpeningMinute,
		ClosingMinute:    m.ClosingMinute,
		TimeBlock:        m.TimeBlock,
		MinimalTimeBlock: m.MinimalTimeBlock,
		MaximalTimeBlock: m.MaximalTimeBlock,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toFacilityModel(f *domain.Facility) facilityModel {
	return facilityModel{
		ID:               f.ID,
		Name:             f.Name,
		Discipline:       f.Discipline,
		Description:      f.Description,
		OpeningMinute:    f.OpeningMinute,
		ClosingMinute:    f.ClosingMinute,
		TimeBlock:        f.TimeBlock,
		MinimalTimeBlock: f.MinimalTimeBlock,
		MaximalTimeBlock: f.MaximalTimeBlock,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}

func (r *FacilityRepository) Create(ctx context.Context, f *domain.Facility) error {
	m := toFacilityModel(f)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*f = *toDomainFacility(m)
	return nil
}

func (r *FacilityRepository) Update(ctx context.Context, f *domain.Facility) error {
	m := toFacilityModel(f)
	m.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Model(&facilityModel{}).
		Where("id = ?", m.ID).
		Updates(&m).Error
}

func (r *FacilityRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&facilityModel{}, id).Error
}

func (r *FacilityRepository) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	var m facilityModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainFacility(m), nil
}

func (r *FacilityRepository) List(ctx context.Context) ([]domain.Facility, error) {
	var ms []facilityModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Facility, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainFacility(m))
	}
	return out, nil
}

func (r *FacilityRepository) NextFreeID(ctx context.Context) (int64, error) {
	var maxID int64
	tx := r.db.WithContext(ctx).
		Model(&facilityModel{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return maxID + 1, nil
}
