package repository

import (
	"gorm.io/gorm"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

// The row models stay private to this package, so schema setup and fixture
// inserts for cmd/seed go through here.

// Migrate creates or updates the schema for every table both services use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&clientModel{},
		&settingsModel{},
		&disciplineModel{},
		&facilityModel{},
		&priceRuleModel{},
		&reservationModel{},
		&departmentModel{},
		&statusModel{},
		&budgetTableModel{},
		&departmentTableModel{},
		&rowModel{},
		&rowDataModel{},
		&divisionModel{},
		&chapterModel{},
		&paragraphModel{},
		&expenseGroupModel{},
	)
}

// Reset wipes all data, children before parents.
func Reset(db *gorm.DB) error {
	tables := []string{
		"row_datas",
		"budget_rows",
		"department_tables",
		"budget_tables",
		"paragraphs",
		"chapters",
		"divisions",
		"expense_groups",
		"statuses",
		"reservations",
		"price_rules",
		"facilities",
		"disciplines",
		"settings",
		"clients",
		"departments",
	}
	for _, t := range tables {
		if err := db.Exec("DELETE FROM " + t).Error; err != nil {
			return err
		}
	}
	return nil
}

func InsertSettings(db *gorm.DB, s *domain.Settings) error {
	m := settingsModel{
		ID:                  s.ID,
		OpeningMinute:       s.OpeningMinute,
		ClosingMinute:       s.ClosingMinute,
		TimeBlock:           s.TimeBlock,
		MinimalTimeBlock:    s.MinimalTimeBlock,
		MaximalTimeBlock:    s.MaximalTimeBlock,
		MinBookingAdvance:   s.MinBookingAdvance,
		MinCancelTime:       s.MinCancelTime,
		Currency:            s.Currency,
		DefaultPlayers:      s.DefaultPlayers,
		DefaultDisciplineID: s.DefaultDisciplineID,
	}
	if err := db.Create(&m).Error; err != nil {
		return err
	}
	s.ID = m.ID
	return nil
}

func InsertDiscipline(db *gorm.DB, d *domain.Discipline) error {
	m := disciplineModel{Name: d.Name, IsEnabled: d.IsEnabled}
	if err := db.Create(&m).Error; err != nil {
		return err
	}
	d.ID = m.ID
	return nil
}

func InsertDepartment(db *gorm.DB, d *domain.Department) error {
	m := departmentModel{ID: d.ID, Name: d.Name}
	if err := db.Create(&m).Error; err != nil {
		return err
	}
	d.ID = m.ID
	return nil
}

func InsertStatus(db *gorm.DB, s *domain.Status) error {
	m := statusModel{ID: s.ID, Value: s.Value}
	if err := db.Create(&m).Error; err != nil {
		return err
	}
	s.ID = m.ID
	return nil
}

func InsertBudgetTable(db *gorm.DB, t *domain.BudgetTable) error {
	m := budgetTableModel{ID: t.ID, Year: t.Year, Version: t.Version, IsOpen: t.IsOpen, Budget: t.Budget}
	if err := db.Create(&m).Error; err != nil {
		return err
	}
	t.ID = m.ID
	return nil
}

func InsertDepartmentTable(db *gorm.DB, dt *domain.DepartmentTable) error {
	m := departmentTableModel{
		ID:           dt.ID,
		TableID:      dt.TableID,
		DepartmentID: dt.DepartmentID,
		StatusID:     dt.StatusID,
		Start:        dt.Start,
		End:          dt.End,
	}
	if err := db.Create(&m).Error; err != nil {
		return err
	}
	dt.ID = m.ID
	return nil
}

func InsertRow(db *gorm.DB, r *domain.Row) error {
	m := rowModel{
		ID:                r.ID,
		DepartmentTableID: r.DepartmentTableID,
		LastUpdate:        r.LastUpdate,
		NextYear:          r.NextYear,
	}
	if err := db.Create(&m).Error; err != nil {
		return err
	}
	r.ID = m.ID
	return nil
}

func InsertDivision(db *gorm.DB, d *domain.Division) error {
	m := divisionModel{ID: d.ID, Value: d.Value}
	if err := db.Create(&m).Error; err != nil {
		return err
	}
	d.ID = m.ID
	return nil
}

func InsertChapter(db *gorm.DB, c *domain.Chapter) error {
	m := chapterModel{ID: c.ID, DivisionID: c.DivisionID, Value: c.Value}
	if err := db.Create(&m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	return nil
}

func InsertParagraph(db *gorm.DB, p *domain.Paragraph) error {
	m := paragraphModel{ID: p.ID, ChapterID: p.ChapterID, ExpenseGroupID: p.ExpenseGroupID, Value: p.Value}
	if err := db.Create(&m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	return nil
}

func InsertExpenseGroup(db *gorm.DB, g *domain.ExpenseGroup) error {
	m := expenseGroupModel{ID: g.ID, Definition: g.Definition}
	if err := db.Create(&m).Error; err != nil {
		return err
	}
	g.ID = m.ID
	return nil
}
