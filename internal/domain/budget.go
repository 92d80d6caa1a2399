package domain

import "time"

// BudgetTable is a yearly budget book. Department tables slice it per
// department; each keeps its own editing window and status.
type BudgetTable struct {
	ID      int64   `json:"id"`
	Year    int     `json:"year"`
	Version string  `json:"version"`
	IsOpen  bool    `json:"is_open"`
	Budget  float64 `json:"budget"`
}

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Status struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

type DepartmentTable struct {
	ID           int64     `json:"id"`
	TableID      int64     `json:"table_id"`
	DepartmentID int64     `json:"department_id"`
	StatusID     int64     `json:"status_id"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
}

// Row is a logical budget line. Its value history lives in RowData records;
// the row itself only tracks the latest touch and the next-year flag.
type Row struct {
	ID                int64     `json:"id"`
	DepartmentTableID int64     `json:"department_table_id"`
	LastUpdate        time.Time `json:"last_update"`
	NextYear          bool      `json:"next_year"`
}

// RowData is one immutable version of a row's values. Versions are appended,
// never mutated or deleted; the one with the greatest (LastUpdate, ID) is the
// authoritative state of the row.
type RowData struct {
	ID         int64     `json:"id"`
	RowID      int64     `json:"row_id"`
	LastUserID int64     `json:"last_user_id"`
	LastUpdate time.Time `json:"last_update"`

	BudgetPart     string `json:"budget_part"`
	DivisionID     int64  `json:"division_id"`
	ChapterID      int64  `json:"chapter_id"`
	ParagraphID    int64  `json:"paragraph_id"`
	ExpenseGroupID int64  `json:"expense_group_id"`

	FundingSource string `json:"funding_source"`
	BudgetCode    string `json:"budget_code"`

	TaskName           string `json:"task_name"`
	TaskJustification  string `json:"task_justification"`
	ExpenditurePurpose string `json:"expenditure_purpose"`

	FinancialNeeds       float64 `json:"financial_needs"`
	ExpenditureLimit     float64 `json:"expenditure_limit"`
	UnallocatedTaskFunds float64 `json:"unallocated_task_funds"`
	ContractAmount       float64 `json:"contract_amount"`
	ContractNumber       string  `json:"contract_number"`

	Notes string `json:"notes"`
}

// Reference tree: division -> chapter -> paragraph, with expense groups
// attached at the paragraph level.

type Division struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

type Chapter struct {
	ID         int64  `json:"id"`
	DivisionID int64  `json:"division_id"`
	Value      string `json:"value"`
}

type Paragraph struct {
	ID             int64  `json:"id"`
	ChapterID      int64  `json:"chapter_id"`
	ExpenseGroupID int64  `json:"expense_group_id"`
	Value          string `json:"value"`
}

type ExpenseGroup struct {
	ID         int64  `json:"id"`
	Definition string `json:"definition"`
}
