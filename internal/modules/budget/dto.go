package budget

import (
	"time"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

type SubmitRowDataRequest struct {
	BudgetPart     string `json:"budget_part" binding:"required"`
	DivisionID     int64  `json:"division_id" binding:"required"`
	ChapterID      int64  `json:"chapter_id" binding:"required"`
	ParagraphID    int64  `json:"paragraph_id" binding:"required"`
	ExpenseGroupID int64  `json:"expense_group_id" binding:"required"`

	FundingSource string `json:"funding_source"`
	BudgetCode    string `json:"budget_code"`

	TaskName           string `json:"task_name" binding:"required"`
	TaskJustification  string `json:"task_justification"`
	ExpenditurePurpose string `json:"expenditure_purpose"`

	FinancialNeeds       float64 `json:"financial_needs" binding:"gte=0"`
	ExpenditureLimit     float64 `json:"expenditure_limit" binding:"gte=0"`
	UnallocatedTaskFunds float64 `json:"unallocated_task_funds" binding:"gte=0"`
	ContractAmount       float64 `json:"contract_amount" binding:"gte=0"`
	ContractNumber       string  `json:"contract_number"`

	Notes string `json:"notes"`
}

type RowDataResponse struct {
	ID         int64     `json:"id"`
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

type RowResponse struct {
	ID         int64     `json:"id"`
	NextYear   bool      `json:"next_year"`
	LastUpdate time.Time `json:"last_update"`

	Current *RowDataResponse  `json:"current,omitempty"`
	History []RowDataResponse `json:"history"`
}

type DepartmentTableResponse struct {
	ID             int64     `json:"id"`
	DepartmentID   int64     `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	Status         string    `json:"status"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`

	Rows []RowResponse `json:"rows"`
}

type TableResponse struct {
	ID      int64   `json:"id"`
	Year    int     `json:"year"`
	Version string  `json:"version"`
	IsOpen  bool    `json:"is_open"`
	Budget  float64 `json:"budget"`

	DepartmentTables []DepartmentTableResponse `json:"department_tables"`
}

// TotalBudgetResponse compares the table's global budget against what the
// departments' latest row versions currently allocate.
type TotalBudgetResponse struct {
	Budget         float64 `json:"budget"`
	AllocatedLimit float64 `json:"allocated_limit"`
	Remaining      float64 `json:"remaining"`
}

func toRowDataResponse(v domain.RowData) RowDataResponse {
	return RowDataResponse{
		ID:                   v.ID,
		LastUserID:           v.LastUserID,
		LastUpdate:           v.LastUpdate,
		BudgetPart:           v.BudgetPart,
		DivisionID:           v.DivisionID,
		ChapterID:            v.ChapterID,
		ParagraphID:          v.ParagraphID,
		ExpenseGroupID:       v.ExpenseGroupID,
		FundingSource:        v.FundingSource,
		BudgetCode:           v.BudgetCode,
		TaskName:             v.TaskName,
		TaskJustification:    v.TaskJustification,
		ExpenditurePurpose:   v.ExpenditurePurpose,
		FinancialNeeds:       v.FinancialNeeds,
		ExpenditureLimit:     v.ExpenditureLimit,
		UnallocatedTaskFunds: v.UnallocatedTaskFunds,
		ContractAmount:       v.ContractAmount,
		ContractNumber:       v.ContractNumber,
		Notes:                v.Notes,
	}
}
