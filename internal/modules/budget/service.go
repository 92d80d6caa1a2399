package budget

import (
	"context"
	"time"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

// Service serves the budget-table hierarchy, per-department aggregates and
// append-only row submissions.
type Service struct {
	repo BudgetRepositoryInterface

	now func() time.Time
}

func NewService(repo BudgetRepositoryInterface) *Service {
	return &Service{repo: repo, now: time.Now}
}

// TableHierarchy loads a table with its department slices, rows and full row
// history. Each row also carries its resolved current version.
func (s *Service) TableHierarchy(ctx context.Context, tableID int64) (*TableResponse, error) {
	table, err := s.repo.GetTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	deptTables, err := s.repo.ListDepartmentTables(ctx, tableID)
	if err != nil {
		return nil, err
	}

	deptNames, err := s.repo.DepartmentNames(ctx)
	if err != nil {
		return nil, err
	}

	statuses, err := s.repo.ListStatuses(ctx)
	if err != nil {
		return nil, err
	}
	statusValues := make(map[int64]string, len(statuses))
	for _, st := range statuses {
		statusValues[st.ID] = st.Value
	}

	deptTableIDs := make([]int64, 0, len(deptTables))
	for _, dt := range deptTables {
		deptTableIDs = append(deptTableIDs, dt.ID)
	}

	rows, err := s.repo.ListRows(ctx, deptTableIDs)
	if err != nil {
		return nil, err
	}

	rowIDs := make([]int64, 0, len(rows))
	for _, r := range rows {
		rowIDs = append(rowIDs, r.ID)
	}
	versions, err := s.repo.ListRowData(ctx, rowIDs)
	if err != nil {
		return nil, err
	}

	versionsByRow := make(map[int64][]domain.RowData)
	for _, v := range versions {
		versionsByRow[v.RowID] = append(versionsByRow[v.RowID], v)
	}

	rowsByDeptTable := make(map[int64][]RowResponse)
	for _, r := range rows {
		history := versionsByRow[r.ID]

		rowResp := RowResponse{
			ID:         r.ID,
			NextYear:   r.NextYear,
			LastUpdate: r.LastUpdate,
			History:    make([]RowDataResponse, 0, len(history)),
		}
		for _, v := range history {
			rowResp.History = append(rowResp.History, toRowDataResponse(v))
		}
		if current, ok := LatestVersion(history); ok {
			cur := toRowDataResponse(current)
			rowResp.Current = &cur
		}

		rowsByDeptTable[r.DepartmentTableID] = append(rowsByDeptTable[r.DepartmentTableID], rowResp)
	}

	out := &TableResponse{
		ID:               table.ID,
		Year:             table.Year,
		Version:          table.Version,
		IsOpen:           table.IsOpen,
		Budget:           table.Budget,
		DepartmentTables: make([]DepartmentTableResponse, 0, len(deptTables)),
	}
	for _, dt := range deptTables {
		out.DepartmentTables = append(out.DepartmentTables, DepartmentTableResponse{
			ID:             dt.ID,
			DepartmentID:   dt.DepartmentID,
			DepartmentName: deptNames[dt.DepartmentID],
			Status:         statusValues[dt.StatusID],
			Start:          dt.Start,
			End:            dt.End,
			Rows:           rowsByDeptTable[dt.ID],
		})
	}
	return out, nil
}

// NeedsPerDepartment sums the latest financial needs of every row, grouped by
// department name.
func (s *Service) NeedsPerDepartment(ctx context.Context, tableID int64) (map[string]float64, error) {
	return s.aggregatePerDepartment(ctx, tableID, func(v domain.RowData) float64 { return v.FinancialNeeds })
}

// LimitsPerDepartment sums the latest expenditure limits per department name.
func (s *Service) LimitsPerDepartment(ctx context.Context, tableID int64) (map[string]float64, error) {
	return s.aggregatePerDepartment(ctx, tableID, func(v domain.RowData) float64 { return v.ExpenditureLimit })
}

// TotalBudget compares the table's budget against the allocated limits.
func (s *Service) TotalBudget(ctx context.Context, tableID int64) (*TotalBudgetResponse, error) {
	table, err := s.repo.GetTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	limits, err := s.LimitsPerDepartment(ctx, tableID)
	if err != nil {
		return nil, err
	}

	allocated := 0.0
	for _, v := range limits {
		allocated += v
	}

	return &TotalBudgetResponse{
		Budget:         table.Budget,
		AllocatedLimit: allocated,
		Remaining:      table.Budget - allocated,
	}, nil
}

func (s *Service) aggregatePerDepartment(ctx context.Context, tableID int64, field func(domain.RowData) float64) (map[string]float64, error) {
	if _, err := s.repo.GetTable(ctx, tableID); err != nil {
		return nil, err
	}

	deptTables, err := s.repo.ListDepartmentTables(ctx, tableID)
	if err != nil {
		return nil, err
	}

	deptNames, err := s.repo.DepartmentNames(ctx)
	if err != nil {
		return nil, err
	}

	deptTableIDs := make([]int64, 0, len(deptTables))
	deptByTable := make(map[int64]string, len(deptTables))
	for _, dt := range deptTables {
		deptTableIDs = append(deptTableIDs, dt.ID)
		deptByTable[dt.ID] = deptNames[dt.DepartmentID]
	}

	rows, err := s.repo.ListRows(ctx, deptTableIDs)
	if err != nil {
		return nil, err
	}
	rowDept := make(map[int64]string, len(rows))
	rowIDs := make([]int64, 0, len(rows))
	for _, r := range rows {
		rowIDs = append(rowIDs, r.ID)
		rowDept[r.ID] = deptByTable[r.DepartmentTableID]
	}

	versions, err := s.repo.ListRowData(ctx, rowIDs)
	if err != nil {
		return nil, err
	}

	// Every department shows up in the report, rows or not.
	out := make(map[string]float64, len(deptTables))
	for _, dt := range deptTables {
		out[deptByTable[dt.ID]] = 0
	}
	for rowID, v := range LatestPerRow(versions) {
		out[rowDept[rowID]] += field(v)
	}
	return out, nil
}

// SubmitRowData appends a new version to a row's history. Non-admin callers
// may only write rows of their own department, and only while the table is
// open and the department's editing window is active.
func (s *Service) SubmitRowData(ctx context.Context, userID int64, userDept *int64, isAdmin bool, rowID int64, req SubmitRowDataRequest) (*domain.RowData, error) {
	row, err := s.repo.GetRow(ctx, rowID)
	if err != nil {
		return nil, err
	}

	deptTable, err := s.repo.GetDepartmentTable(ctx, row.DepartmentTableID)
	if err != nil {
		return nil, err
	}

	table, err := s.repo.GetTable(ctx, deptTable.TableID)
	if err != nil {
		return nil, err
	}
	if !table.IsOpen {
		return nil, ErrTableClosed
	}

	now := s.now()
	if !isAdmin {
		if userDept == nil {
			return nil, ErrNoDepartment
		}
		if *userDept != deptTable.DepartmentID {
			return nil, ErrWrongDepartment
		}
		if now.Before(deptTable.Start) || now.After(deptTable.End) {
			return nil, ErrWindowClosed
		}
	}

	version := &domain.RowData{
		RowID:                rowID,
		LastUserID:           userID,
		LastUpdate:           now,
		BudgetPart:           req.BudgetPart,
		DivisionID:           req.DivisionID,
		ChapterID:            req.ChapterID,
		ParagraphID:          req.ParagraphID,
		ExpenseGroupID:       req.ExpenseGroupID,
		FundingSource:        req.FundingSource,
		BudgetCode:           req.BudgetCode,
		TaskName:             req.TaskName,
		TaskJustification:    req.TaskJustification,
		ExpenditurePurpose:   req.ExpenditurePurpose,
		FinancialNeeds:       req.FinancialNeeds,
		ExpenditureLimit:     req.ExpenditureLimit,
		UnallocatedTaskFunds: req.UnallocatedTaskFunds,
		ContractAmount:       req.ContractAmount,
		ContractNumber:       req.ContractNumber,
		Notes:                req.Notes,
	}

	if err := s.repo.AppendRowData(ctx, version); err != nil {
		return nil, err
	}
	return version, nil
}

func (s *Service) ListDivisions(ctx context.Context) ([]domain.Division, error) {
	return s.repo.ListDivisions(ctx)
}

// ListChapters returns the chapters of a division; the division must exist.
func (s *Service) ListChapters(ctx context.Context, divisionID int64) ([]domain.Chapter, error) {
	if _, err := s.repo.GetDivision(ctx, divisionID); err != nil {
		return nil, err
	}
	return s.repo.ListChaptersByDivision(ctx, divisionID)
}

// ListParagraphs resolves a chapter by its classification value ("60015")
// and returns its paragraphs.
func (s *Service) ListParagraphs(ctx context.Context, chapterValue string) ([]domain.Paragraph, error) {
	chapter, err := s.repo.GetChapterByValue(ctx, chapterValue)
	if err != nil {
		return nil, err
	}
	return s.repo.ListParagraphsByChapter(ctx, chapter.ID)
}

func (s *Service) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.repo.ListDepartments(ctx)
}
