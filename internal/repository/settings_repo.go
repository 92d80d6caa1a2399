package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

type settingsModel struct {
	ID                  int64   `gorm:"column:id;primaryKey"`
	OpeningMinute       int     `gorm:"column:opening_minute"`
	ClosingMinute       int     `gorm:"column:closing_minute"`
	TimeBlock           float64 `gorm:"column:time_block"`
	MinimalTimeBlock    float64 `gorm:"column:minimal_time_block"`
	MaximalTimeBlock    float64 `gorm:"column:maximal_time_block"`
	MinBookingAdvance   float64 `gorm:"column:min_booking_advance"`
	MinCancelTime       float64 `gorm:"column:min_cancel_time"`
	Currency            string  `gorm:"column:currency"`
	DefaultPlayers      int     `gorm:"column:default_players"`
	DefaultDisciplineID *int64  `gorm:"column:default_discipline_id"`
}

func (settingsModel) TableName() string { return "settings" }

type disciplineModel struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	Name      string `gorm:"column:name;uniqueIndex"`
	IsEnabled bool   `gorm:"column:is_enabled"`
}

func (disciplineModel) TableName() string { return "disciplines" }

func toDomainSettings(m settingsModel) *domain.Settings {
	return &domain.Settings{
		ID:                  m.ID,
		OpeningMinute:       m.OpeningMinute,
		ClosingMinute:       m.ClosingMinute,
		TimeBlock:           m.TimeBlock,
		MinimalTimeBlock:    m.MinimalTimeBlock,
		MaximalTimeBlock:    m.MaximalTimeBlock,
		MinBookingAdvance:   m.MinBookingAdvance,
		MinCancelTime:       m.MinCancelTime,
		Currency:            m.Currency,
		DefaultPlayers:      m.DefaultPlayers,
		DefaultDisciplineID: m.DefaultDisciplineID,
	}
}

// Get loads the singleton settings record.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	var m settingsModel
	tx := r.db.WithContext(ctx).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSettings(m), nil
}

func (r *SettingsRepository) Update(ctx context.Context, s *domain.Settings) error {
	return r.db.WithContext(ctx).
		Model(&settingsModel{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"opening_minute":      s.OpeningMinute,
			"closing_minute":      s.ClosingMinute,
			"time_block":          s.TimeBlock,
			"minimal_time_block":  s.MinimalTimeBlock,
			"maximal_time_block":  s.MaximalTimeBlock,
			"min_booking_advance": s.MinBookingAdvance,
			"min_cancel_time":     s.MinCancelTime,
			"currency":            s.Currency,
		}).Error
}

func (r *SettingsRepository) UpdateDefaultPlayers(ctx context.Context, id int64, players int) error {
	return r.db.WithContext(ctx).
		Model(&settingsModel{}).
		Where("id = ?", id).
		Update("default_players", players).Error
}

func (r *SettingsRepository) UpdateDefaultDiscipline(ctx context.Context, id, disciplineID int64) error {
	return r.db.WithContext(ctx).
		Model(&settingsModel{}).
		Where("id = ?", id).
		Update("default_discipline_id", disciplineID).Error
}

func (r *SettingsRepository) ListDisciplines(ctx context.Context) ([]domain.Discipline, error) {
	var ms []disciplineModel
	tx := r.db.WithContext(ctx).Order("name").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Discipline, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.Discipline{ID: m.ID, Name: m.Name, IsEnabled: m.IsEnabled})
	}
	return out, nil
}

func (r *SettingsRepository) GetDisciplineByName(ctx context.Context, name string) (*domain.Discipline, error) {
	var m disciplineModel
	tx := r.db.WithContext(ctx).Where("name = ?", name).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.Discipline{ID: m.ID, Name: m.Name, IsEnabled: m.IsEnabled}, nil
}

func (r *SettingsRepository) CreateDiscipline(ctx context.Context, d *domain.Discipline) error {
	m := disciplineModel{Name: d.Name, IsEnabled: d.IsEnabled}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	d.ID = m.ID
	return nil
}

// ReplaceDisciplines swaps the full discipline list in one transaction and
// re-points the settings default at its (re-created) row by name.
func (r *SettingsRepository) ReplaceDisciplines(ctx context.Context, settingsID int64, defaultName string, list []domain.Discipline) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&disciplineModel{}).Error; err != nil {
			return err
		}
		for i := range list {
			m := disciplineModel{Name: list[i].Name, IsEnabled: list[i].IsEnabled}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			list[i].ID = m.ID
		}

		// nothing to re-point when no default discipline is configured
		if defaultName == "" {
			return nil
		}

		var def disciplineModel
		if err := tx.Where("name = ?", defaultName).First(&def).Error; err != nil {
			return err
		}
		return tx.Model(&settingsModel{}).
			Where("id = ?", settingsID).
			Update("default_discipline_id", def.ID).Error
	})
}

func (r *SettingsRepository) GetDisciplineByID(ctx context.Context, id int64) (*domain.Discipline, error) {
	var m disciplineModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.Discipline{ID: m.ID, Name: m.Name, IsEnabled: m.IsEnabled}, nil
}
