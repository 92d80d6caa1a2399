package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:settings_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&settingsModel{}, &disciplineModel{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return db
}

func storedSettings() *domain.Settings {
	return &domain.Settings{
		OpeningMinute:     8 * 60,
		ClosingMinute:     22 * 60,
		TimeBlock:         0.5,
		MinimalTimeBlock:  0.5,
		MaximalTimeBlock:  3,
		MinBookingAdvance: 0.5,
		MinCancelTime:     2,
		Currency:          "PLN",
		DefaultPlayers:    2,
	}
}

func TestUpdate_PersistsCurrency(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	s := storedSettings()
	if err := InsertSettings(db, s); err != nil {
		t.Fatalf("insert settings: %v", err)
	}

	s.Currency = "EUR"
	s.MinCancelTime = 3

	assert.NoError(t, repo.Update(ctx, s))

	got, err := repo.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, 3.0, got.MinCancelTime)
}

func TestReplaceDisciplines_NoDefaultConfigured(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	s := storedSettings()
	if err := InsertSettings(db, s); err != nil {
		t.Fatalf("insert settings: %v", err)
	}
	old := domain.Discipline{Name: "Squash", IsEnabled: true}
	if err := InsertDiscipline(db, &old); err != nil {
		t.Fatalf("insert discipline: %v", err)
	}

	err := repo.ReplaceDisciplines(ctx, s.ID, "", []domain.Discipline{
		{Name: domain.ProtectedDiscipline, IsEnabled: true},
		{Name: "Tennis", IsEnabled: true},
	})

	assert.NoError(t, err)

	list, err := repo.ListDisciplines(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 2)

	got, err := repo.Get(ctx)
	assert.NoError(t, err)
	assert.Nil(t, got.DefaultDisciplineID)
}

func TestReplaceDisciplines_RepointsDefaultByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	tennis := domain.Discipline{Name: "Tennis", IsEnabled: true}
	if err := InsertDiscipline(db, &tennis); err != nil {
		t.Fatalf("insert discipline: %v", err)
	}
	s := storedSettings()
	s.DefaultDisciplineID = &tennis.ID
	if err := InsertSettings(db, s); err != nil {
		t.Fatalf("insert settings: %v", err)
	}

	err := repo.ReplaceDisciplines(ctx, s.ID, "Tennis", []domain.Discipline{
		{Name: domain.ProtectedDiscipline, IsEnabled: true},
		{Name: "Tennis", IsEnabled: true},
		{Name: "Badminton", IsEnabled: false},
	})

	assert.NoError(t, err)

	got, err := repo.Get(ctx)
	assert.NoError(t, err)
	if assert.NotNil(t, got.DefaultDisciplineID) {
		def, err := repo.GetDisciplineByID(ctx, *got.DefaultDisciplineID)
		assert.NoError(t, err)
		assert.Equal(t, "Tennis", def.Name)
	}
}
