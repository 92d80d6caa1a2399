package settings

import (
	"context"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

// SettingsRepositoryInterface — only the methods the settings service uses
type SettingsRepositoryInterface interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) error
	UpdateDefaultPlayers(ctx context.Context, id int64, players int) error
	UpdateDefaultDiscipline(ctx context.Context, id, disciplineID int64) error
	ListDisciplines(ctx context.Context) ([]domain.Discipline, error)
	GetDisciplineByName(ctx context.Context, name string) (*domain.Discipline, error)
	GetDisciplineByID(ctx context.Context, id int64) (*domain.Discipline, error)
	CreateDiscipline(ctx context.Context, d *domain.Discipline) error
	ReplaceDisciplines(ctx context.Context, settingsID int64, defaultName string, list []domain.Discipline) error
}
