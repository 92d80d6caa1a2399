package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kokolodziejska/zagrane/internal/modules/budget"
)

type mockTableReader struct {
	mock.Mock
}

func (m *mockTableReader) TableHierarchy(ctx context.Context, tableID int64) (*budget.TableResponse, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.TableResponse), args.Error(1)
}

type mockReferenceLookup struct {
	mock.Mock
}

func (m *mockReferenceLookup) lookup(ctx context.Context) (map[int64]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]string), args.Error(1)
}

func (m *mockReferenceLookup) DivisionValues(ctx context.Context) (map[int64]string, error) {
	return m.lookup(ctx)
}

func (m *mockReferenceLookup) ChapterValues(ctx context.Context) (map[int64]string, error) {
	return m.lookup(ctx)
}

func (m *mockReferenceLookup) ParagraphValues(ctx context.Context) (map[int64]string, error) {
	return m.lookup(ctx)
}

func (m *mockReferenceLookup) ExpenseGroupDefinitions(ctx context.Context) (map[int64]string, error) {
	return m.lookup(ctx)
}

func sampleTable() *budget.TableResponse {
	current := budget.RowDataResponse{
		ID:               7,
		LastUpdate:       time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		BudgetPart:       "33",
		DivisionID:       1,
		ChapterID:        1,
		ParagraphID:      1,
		ExpenseGroupID:   1,
		TaskName:         "Road maintenance",
		FinancialNeeds:   500,
		ExpenditureLimit: 400,
	}
	return &budget.TableResponse{
		ID:      1,
		Year:    2027,
		Version: "draft",
		IsOpen:  true,
		Budget:  1000,
		DepartmentTables: []budget.DepartmentTableResponse{
			{
				ID:             20,
				DepartmentName: "Transport",
				Status:         "in_progress",
				Rows: []budget.RowResponse{
					{ID: 100, Current: &current, History: []budget.RowDataResponse{current}},
					{ID: 101, History: []budget.RowDataResponse{}},
				},
			},
		},
	}
}

func TestBuildWorkbook_WritesCurrentVersionsOnly(t *testing.T) {
	tables := new(mockTableReader)
	refs := new(mockReferenceLookup)
	svc := NewService(tables, refs)

	tables.On("TableHierarchy", mock.Anything, int64(1)).Return(sampleTable(), nil)
	refs.On("lookup", mock.Anything).Return(map[int64]string{1: "600"}, nil)

	f, table, err := svc.BuildWorkbook(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 2027, table.Year)
	defer f.Close()

	title, err := f.GetCellValue(sheetName, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Budget table 2027, version draft", title)

	header, err := f.GetCellValue(sheetName, "A2")
	assert.NoError(t, err)
	assert.Equal(t, "Department", header)

	rows, err := f.GetRows(sheetName)
	assert.NoError(t, err)
	// title, header and one data row; the never-filled row is skipped
	assert.Len(t, rows, 3)

	dept, _ := f.GetCellValue(sheetName, "A3")
	task, _ := f.GetCellValue(sheetName, "J3")
	assert.Equal(t, "Transport", dept)
	assert.Equal(t, "Road maintenance", task)
}

func TestBuildWorkbook_PropagatesLookupFailure(t *testing.T) {
	tables := new(mockTableReader)
	refs := new(mockReferenceLookup)
	svc := NewService(tables, refs)

	tables.On("TableHierarchy", mock.Anything, int64(1)).Return(sampleTable(), nil)
	refs.On("lookup", mock.Anything).Return(nil, assert.AnError)

	_, _, err := svc.BuildWorkbook(context.Background(), 1)

	assert.ErrorIs(t, err, assert.AnError)
}
