package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

type PriceRepository struct {
	db *gorm.DB
}

func NewPriceRepository(db *gorm.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

type priceRuleModel struct {
	ID                int64     `gorm:"column:id;primaryKey"`
	PriceTable        int       `gorm:"column:price_table;index"`
	FacilityID        int64     `gorm:"column:facility_id;index"`
	ValidFrom         time.Time `gorm:"column:valid_from"`
	ValidTo           time.Time `gorm:"column:valid_to"`
	DayMask           int       `gorm:"column:day_mask"`
	StartMinute       int       `gorm:"column:start_minute"`
	EndMinute         int       `gorm:"column:end_minute"`
	ReferenceDuration int       `gorm:"column:reference_duration"`
	Price             float64   `gorm:"column:price"`
	PriceWithPass     *float64  `gorm:"column:price_with_pass"`
	Currency          string    `gorm:"column:currency"`
}

func (priceRuleModel) TableName() string { return "price_rules" }

func toDomainPriceRule(m priceRuleModel) domain.PriceRule {
	return domain.PriceRule{
		ID:                m.ID,
		PriceTable:        m.PriceTable,
		FacilityID:        m.FacilityID,
		ValidFrom:         m.ValidFrom,
		ValidTo:           m.ValidTo,
		DayMask:           m.DayMask,
		StartMinute:       m.StartMinute,
		EndMinute:         m.EndMinute,
		ReferenceDuration: m.ReferenceDuration,
		Price:             m.Price,
		PriceWithPass:     m.PriceWithPass,
		Currency:          m.Currency,
	}
}

func toPriceRuleModel(r domain.PriceRule) priceRuleModel {
	return priceRuleModel{
		ID:                r.ID,
		PriceTable:        r.PriceTable,
		FacilityID:        r.FacilityID,
		ValidFrom:         r.ValidFrom,
		ValidTo:           r.ValidTo,
		DayMask:           r.DayMask,
		StartMinute:       r.StartMinute,
		EndMinute:         r.EndMinute,
		ReferenceDuration: r.ReferenceDuration,
		Price:             r.Price,
		PriceWithPass:     r.PriceWithPass,
		Currency:          r.Currency,
	}
}

func (r *PriceRepository) List(ctx context.Context) ([]domain.PriceRule, error) {
	var ms []priceRuleModel
	tx := r.db.WithContext(ctx).
		Order("price_table").
		Order("facility_id").
		Order("day_mask").
		Order("start_minute").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.PriceRule, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainPriceRule(m))
	}
	return out, nil
}

// FindApplicable returns the rules for a facility whose validity covers date,
// whose day mask includes date's weekday, and whose time window intersects
// [startMinute, endMinute), ordered by (start_minute, end_minute). This is
// the candidate set the price resolver walks.
func (r *PriceRepository) FindApplicable(ctx context.Context, facilityID int64, date time.Time, startMinute, endMinute int) ([]domain.PriceRule, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	mask := domain.WeekdayBit(date.Weekday())

	var ms []priceRuleModel
	tx := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Where("valid_from <= ? AND valid_to >= ?", day, day).
		Where("day_mask & ? != 0", mask).
		Where("start_minute < ? AND end_minute > ?", endMinute, startMinute).
		Order("start_minute").
		Order("end_minute").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.PriceRule, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainPriceRule(m))
	}
	return out, nil
}

func (r *PriceRepository) GetByID(ctx context.Context, id int64) (*domain.PriceRule, error) {
	var m priceRuleModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	rule := toDomainPriceRule(m)
	return &rule, nil
}

func (r *PriceRepository) Create(ctx context.Context, rule *domain.PriceRule) error {
	m := toPriceRuleModel(*rule)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rule = toDomainPriceRule(m)
	return nil
}

func (r *PriceRepository) Update(ctx context.Context, rule *domain.PriceRule) error {
	m := toPriceRuleModel(*rule)
	return r.db.WithContext(ctx).
		Model(&priceRuleModel{}).
		Where("id = ?", m.ID).
		Updates(&m).Error
}

func (r *PriceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&priceRuleModel{}, id).Error
}

// CurrenciesForFacility lists the distinct currencies used by a facility's
// rules. The pricing service rejects writes that would make this set larger
// than one.
func (r *PriceRepository) CurrenciesForFacility(ctx context.Context, facilityID int64) ([]string, error) {
	var currencies []string
	tx := r.db.WithContext(ctx).
		Model(&priceRuleModel{}).
		Distinct("currency").
		Where("facility_id = ?", facilityID).
		Pluck("currency", &currencies)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return currencies, nil
}
