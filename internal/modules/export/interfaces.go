package export

import (
	"context"

	"github.com/kokolodziejska/zagrane/internal/modules/budget"
)

// TableReader resolves a table with its rows and current versions.
type TableReader interface {
	TableHierarchy(ctx context.Context, tableID int64) (*budget.TableResponse, error)
}

// ReferenceLookup translates classification IDs into the human-readable
// values that go into the spreadsheet.
type ReferenceLookup interface {
	DivisionValues(ctx context.Context) (map[int64]string, error)
	ChapterValues(ctx context.Context) (map[int64]string, error)
	ParagraphValues(ctx context.Context) (map[int64]string, error)
	ExpenseGroupDefinitions(ctx context.Context) (map[int64]string, error)
}
