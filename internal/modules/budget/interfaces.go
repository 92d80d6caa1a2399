package budget

import (
	"context"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

// BudgetRepositoryInterface — only the methods the budget service uses
type BudgetRepositoryInterface interface {
	GetTable(ctx context.Context, id int64) (*domain.BudgetTable, error)
	ListDepartmentTables(ctx context.Context, tableID int64) ([]domain.DepartmentTable, error)
	GetDepartmentTable(ctx context.Context, id int64) (*domain.DepartmentTable, error)
	ListRows(ctx context.Context, departmentTableIDs []int64) ([]domain.Row, error)
	GetRow(ctx context.Context, id int64) (*domain.Row, error)
	ListRowData(ctx context.Context, rowIDs []int64) ([]domain.RowData, error)
	AppendRowData(ctx context.Context, d *domain.RowData) error

	ListDivisions(ctx context.Context) ([]domain.Division, error)
	GetDivision(ctx context.Context, id int64) (*domain.Division, error)
	ListChaptersByDivision(ctx context.Context, divisionID int64) ([]domain.Chapter, error)
	GetChapterByValue(ctx context.Context, value string) (*domain.Chapter, error)
	ListParagraphsByChapter(ctx context.Context, chapterID int64) ([]domain.Paragraph, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	ListStatuses(ctx context.Context) ([]domain.Status, error)
	DepartmentNames(ctx context.Context) (map[int64]string, error)
}
