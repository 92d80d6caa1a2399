package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

type budgetTableModel struct {
	ID      int64   `gorm:"column:id;primaryKey"`
	Year    int     `gorm:"column:year"`
	Version string  `gorm:"column:version"`
	IsOpen  bool    `gorm:"column:is_open"`
	Budget  float64 `gorm:"column:budget"`
}

func (budgetTableModel) TableName() string { return "budget_tables" }

type departmentModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (departmentModel) TableName() string { return "departments" }

type statusModel struct {
	ID    int64  `gorm:"column:id;primaryKey"`
	Value string `gorm:"column:value"`
}

func (statusModel) TableName() string { return "statuses" }

type departmentTableModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	TableID      int64     `gorm:"column:table_id;index"`
	DepartmentID int64     `gorm:"column:department_id;index"`
	StatusID     int64     `gorm:"column:status_id"`
	Start        time.Time `gorm:"column:start"`
	End          time.Time `gorm:"column:end"`
}

func (departmentTableModel) TableName() string { return "department_tables" }

type rowModel struct {
	ID                int64     `gorm:"column:id;primaryKey"`
	DepartmentTableID int64     `gorm:"column:department_table_id;index"`
	LastUpdate        time.Time `gorm:"column:last_update"`
	NextYear          bool      `gorm:"column:next_year"`
}

func (rowModel) TableName() string { return "budget_rows" }

type rowDataModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	RowID      int64     `gorm:"column:row_id;index"`
	LastUserID int64     `gorm:"column:last_user_id"`
	LastUpdate time.Time `gorm:"column:last_update"`

	BudgetPart     string `gorm:"column:budget_part"`
	DivisionID     int64  `gorm:"column:division_id"`
	ChapterID      int64  `gorm:"column:chapter_id"`
	ParagraphID    int64  `gorm:"column:paragraph_id"`
	ExpenseGroupID int64  `gorm:"column:expense_group_id"`

	FundingSource string `gorm:"column:funding_source"`
	BudgetCode    string `gorm:"column:budget_code"`

	TaskName           string `gorm:"column:task_name"`
	TaskJustification  string `gorm:"column:task_justification"`
	ExpenditurePurpose string `gorm:"column:expenditure_purpose"`

	FinancialNeeds       float64 `gorm:"column:financial_needs"`
	ExpenditureLimit     float64 `gorm:"column:expenditure_limit"`
	UnallocatedTaskFunds float64 `gorm:"column:unallocated_task_funds"`
	ContractAmount       float64 `gorm:"column:contract_amount"`
	ContractNumber       string  `gorm:"column:contract_number"`

	Notes string `gorm:"column:notes"`
}

func (rowDataModel) TableName() string { return "row_datas" }

type divisionModel struct {
	ID    int64  `gorm:"column:id;primaryKey"`
	Value string `gorm:"column:value"`
}

func (divisionModel) TableName() string { return "divisions" }

type chapterModel struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	DivisionID int64  `gorm:"column:division_id;index"`
	Value      string `gorm:"column:value"`
}

func (chapterModel) TableName() string { return "chapters" }

type paragraphModel struct {
	ID             int64  `gorm:"column:id;primaryKey"`
	ChapterID      int64  `gorm:"column:chapter_id;index"`
	ExpenseGroupID int64  `gorm:"column:expense_group_id"`
	Value          string `gorm:"column:value"`
}

func (paragraphModel) TableName() string { return "paragraphs" }

type expenseGroupModel struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	Definition string `gorm:"column:definition"`
}

func (expenseGroupModel) TableName() string { return "expense_groups" }

func toDomainRowData(m rowDataModel) domain.RowData {
	return domain.RowData{
		ID:                   m.ID,
		RowID:                m.RowID,
		LastUserID:           m.LastUserID,
		LastUpdate:           m.LastUpdate,
		BudgetPart:           m.BudgetPart,
		DivisionID:           m.DivisionID,
		ChapterID:            m.ChapterID,
		ParagraphID:          m.ParagraphID,
		ExpenseGroupID:       m.ExpenseGroupID,
		FundingSource:        m.FundingSource,
		BudgetCode:           m.BudgetCode,
		TaskName:             m.TaskName,
		TaskJustification:    m.TaskJustification,
		ExpenditurePurpose:   m.ExpenditurePurpose,
		FinancialNeeds:       m.FinancialNeeds,
		ExpenditureLimit:     m.ExpenditureLimit,
		UnallocatedTaskFunds: m.UnallocatedTaskFunds,
		ContractAmount:       m.ContractAmount,
		ContractNumber:       m.ContractNumber,
		Notes:                m.Notes,
	}
}

func toRowDataModel(d *domain.RowData) rowDataModel {
	return rowDataModel{
		ID:                   d.ID,
		RowID:                d.RowID,
		LastUserID:           d.LastUserID,
		LastUpdate:           d.LastUpdate,
		BudgetPart:           d.BudgetPart,
		DivisionID:           d.DivisionID,
		ChapterID:            d.ChapterID,
		ParagraphID:          d.ParagraphID,
		ExpenseGroupID:       d.ExpenseGroupID,
		FundingSource:        d.FundingSource,
		BudgetCode:           d.BudgetCode,
		TaskName:             d.TaskName,
		TaskJustification:    d.TaskJustification,
		ExpenditurePurpose:   d.ExpenditurePurpose,
		FinancialNeeds:       d.FinancialNeeds,
		ExpenditureLimit:     d.ExpenditureLimit,
		UnallocatedTaskFunds: d.UnallocatedTaskFunds,
		ContractAmount:       d.ContractAmount,
		ContractNumber:       d.ContractNumber,
		Notes:                d.Notes,
	}
}

func (r *BudgetRepository) GetTable(ctx context.Context, id int64) (*domain.BudgetTable, error) {
	var m budgetTableModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.BudgetTable{ID: m.ID, Year: m.Year, Version: m.Version, IsOpen: m.IsOpen, Budget: m.Budget}, nil
}

func (r *BudgetRepository) ListDepartmentTables(ctx context.Context, tableID int64) ([]domain.DepartmentTable, error) {
	var ms []departmentTableModel
	tx := r.db.WithContext(ctx).Where("table_id = ?", tableID).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.DepartmentTable, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.DepartmentTable{
			ID:           m.ID,
			TableID:      m.TableID,
			DepartmentID: m.DepartmentID,
			StatusID:     m.StatusID,
			Start:        m.Start,
			End:          m.End,
		})
	}
	return out, nil
}

func (r *BudgetRepository) GetDepartmentTable(ctx context.Context, id int64) (*domain.DepartmentTable, error) {
	var m departmentTableModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.DepartmentTable{
		ID:           m.ID,
		TableID:      m.TableID,
		DepartmentID: m.DepartmentID,
		StatusID:     m.StatusID,
		Start:        m.Start,
		End:          m.End,
	}, nil
}

func (r *BudgetRepository) ListRows(ctx context.Context, departmentTableIDs []int64) ([]domain.Row, error) {
	if len(departmentTableIDs) == 0 {
		return nil, nil
	}
	var ms []rowModel
	tx := r.db.WithContext(ctx).
		Where("department_table_id IN ?", departmentTableIDs).
		Order("id").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Row, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.Row{ID: m.ID, DepartmentTableID: m.DepartmentTableID, LastUpdate: m.LastUpdate, NextYear: m.NextYear})
	}
	return out, nil
}

func (r *BudgetRepository) GetRow(ctx context.Context, id int64) (*domain.Row, error) {
	var m rowModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.Row{ID: m.ID, DepartmentTableID: m.DepartmentTableID, LastUpdate: m.LastUpdate, NextYear: m.NextYear}, nil
}

// ListRowData returns every stored version for the given rows, oldest first.
func (r *BudgetRepository) ListRowData(ctx context.Context, rowIDs []int64) ([]domain.RowData, error) {
	if len(rowIDs) == 0 {
		return nil, nil
	}
	var ms []rowDataModel
	tx := r.db.WithContext(ctx).
		Where("row_id IN ?", rowIDs).
		Order("last_update").
		Order("id").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.RowData, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainRowData(m))
	}
	return out, nil
}

// AppendRowData inserts a new immutable version and bumps the row's
// last_update inside one transaction. Existing versions are never touched.
func (r *BudgetRepository) AppendRowData(ctx context.Context, d *domain.RowData) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toRowDataModel(d)
		m.ID = 0
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*d = toDomainRowData(m)

		return tx.Model(&rowModel{}).
			Where("id = ?", d.RowID).
			Update("last_update", d.LastUpdate).Error
	})
}

func (r *BudgetRepository) ListDivisions(ctx context.Context) ([]domain.Division, error) {
	var ms []divisionModel
	tx := r.db.WithContext(ctx).Order("value").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Division, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.Division{ID: m.ID, Value: m.Value})
	}
	return out, nil
}

func (r *BudgetRepository) GetDivision(ctx context.Context, id int64) (*domain.Division, error) {
	var m divisionModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.Division{ID: m.ID, Value: m.Value}, nil
}

func (r *BudgetRepository) ListChaptersByDivision(ctx context.Context, divisionID int64) ([]domain.Chapter, error) {
	var ms []chapterModel
	tx := r.db.WithContext(ctx).
		Where("division_id = ?", divisionID).
		Order("value").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Chapter, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.Chapter{ID: m.ID, DivisionID: m.DivisionID, Value: m.Value})
	}
	return out, nil
}

func (r *BudgetRepository) GetChapterByValue(ctx context.Context, value string) (*domain.Chapter, error) {
	var m chapterModel
	tx := r.db.WithContext(ctx).Where("value = ?", value).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.Chapter{ID: m.ID, DivisionID: m.DivisionID, Value: m.Value}, nil
}

func (r *BudgetRepository) ListParagraphsByChapter(ctx context.Context, chapterID int64) ([]domain.Paragraph, error) {
	var ms []paragraphModel
	tx := r.db.WithContext(ctx).
		Where("chapter_id = ?", chapterID).
		Order("value").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Paragraph, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.Paragraph{ID: m.ID, ChapterID: m.ChapterID, ExpenseGroupID: m.ExpenseGroupID, Value: m.Value})
	}
	return out, nil
}

func (r *BudgetRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	var ms []departmentModel
	tx := r.db.WithContext(ctx).Order("name").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Department, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.Department{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

func (r *BudgetRepository) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	var ms []statusModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Status, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.Status{ID: m.ID, Value: m.Value})
	}
	return out, nil
}

// Reference lookups used by the exporter to resolve codes for display.

func (r *BudgetRepository) DivisionValues(ctx context.Context) (map[int64]string, error) {
	var ms []divisionModel
	if err := r.db.WithContext(ctx).Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make(map[int64]string, len(ms))
	for _, m := range ms {
		out[m.ID] = m.Value
	}
	return out, nil
}

func (r *BudgetRepository) ChapterValues(ctx context.Context) (map[int64]string, error) {
	var ms []chapterModel
	if err := r.db.WithContext(ctx).Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make(map[int64]string, len(ms))
	for _, m := range ms {
		out[m.ID] = m.Value
	}
	return out, nil
}

func (r *BudgetRepository) ParagraphValues(ctx context.Context) (map[int64]string, error) {
	var ms []paragraphModel
	if err := r.db.WithContext(ctx).Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make(map[int64]string, len(ms))
	for _, m := range ms {
		out[m.ID] = m.Value
	}
	return out, nil
}

func (r *BudgetRepository) ExpenseGroupDefinitions(ctx context.Context) (map[int64]string, error) {
	var ms []expenseGroupModel
	if err := r.db.WithContext(ctx).Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make(map[int64]string, len(ms))
	for _, m := range ms {
		out[m.ID] = m.Definition
	}
	return out, nil
}

func (r *BudgetRepository) DepartmentNames(ctx context.Context) (map[int64]string, error) {
	var ms []departmentModel
	if err := r.db.WithContext(ctx).Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make(map[int64]string, len(ms))
	for _, m := range ms {
		out[m.ID] = m.Name
	}
	return out, nil
}
