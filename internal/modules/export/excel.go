package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kokolodziejska/zagrane/internal/modules/budget"
)

const sheetName = "Budget"

var columns = []string{
	"Department",
	"Status",
	"Budget part",
	"Division",
	"Chapter",
	"Paragraph",
	"Expense group",
	"Funding source",
	"Budget code",
	"Task",
	"Justification",
	"Expenditure purpose",
	"Financial needs",
	"Expenditure limit",
	"Unallocated funds",
	"Contract amount",
	"Contract number",
	"Notes",
	"Last update",
}

type Service struct {
	tables TableReader
	refs   ReferenceLookup
}

func NewService(tables TableReader, refs ReferenceLookup) *Service {
	return &Service{tables: tables, refs: refs}
}

// BuildWorkbook renders the table's current state as a spreadsheet. Each row
// appears once, with its latest version only; rows that were never filled in
// are skipped.
func (s *Service) BuildWorkbook(ctx context.Context, tableID int64) (*excelize.File, *budget.TableResponse, error) {
	table, err := s.tables.TableHierarchy(ctx, tableID)
	if err != nil {
		return nil, nil, err
	}

	divisions, err := s.refs.DivisionValues(ctx)
	if err != nil {
		return nil, nil, err
	}
	chapters, err := s.refs.ChapterValues(ctx)
	if err != nil {
		return nil, nil, err
	}
	paragraphs, err := s.refs.ParagraphValues(ctx)
	if err != nil {
		return nil, nil, err
	}
	groups, err := s.refs.ExpenseGroupDefinitions(ctx)
	if err != nil {
		return nil, nil, err
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Budget table %d, version %s", table.Year, table.Version))

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create header style: %w", err)
	}
	for i, name := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetName, cell, name)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	row := 3
	for _, dt := range table.DepartmentTables {
		for _, r := range dt.Rows {
			if r.Current == nil {
				continue
			}
			cur := r.Current

			values := []interface{}{
				dt.DepartmentName,
				dt.Status,
				cur.BudgetPart,
				divisions[cur.DivisionID],
				chapters[cur.ChapterID],
				paragraphs[cur.ParagraphID],
				groups[cur.ExpenseGroupID],
				cur.FundingSource,
				cur.BudgetCode,
				cur.TaskName,
				cur.TaskJustification,
				cur.ExpenditurePurpose,
				cur.FinancialNeeds,
				cur.ExpenditureLimit,
				cur.UnallocatedTaskFunds,
				cur.ContractAmount,
				cur.ContractNumber,
				cur.Notes,
				cur.LastUpdate.Format("2006-01-02 15:04"),
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				f.SetCellValue(sheetName, cell, v)
			}
			row++
		}
	}

	return f, table, nil
}
