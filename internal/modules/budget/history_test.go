package budget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

func version(id, rowID int64, at time.Time, limit float64) domain.RowData {
	return domain.RowData{
		ID:               id,
		RowID:            rowID,
		LastUpdate:       at,
		FinancialNeeds:   limit * 2,
		ExpenditureLimit: limit,
	}
}

func TestLatestVersion_PicksNewestUpdate(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	versions := []domain.RowData{
		version(1, 10, base, 100),
		version(2, 10, base.Add(time.Hour), 200),
		version(3, 10, base.Add(30*time.Minute), 150),
	}

	latest, ok := LatestVersion(versions)

	assert.True(t, ok)
	assert.Equal(t, int64(2), latest.ID)
	assert.Equal(t, 200.0, latest.ExpenditureLimit)
}

func TestLatestVersion_OrderIndependent(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := version(1, 10, base, 100)
	b := version(2, 10, base.Add(time.Hour), 200)
	c := version(3, 10, base.Add(30*time.Minute), 150)

	orderings := [][]domain.RowData{
		{a, b, c},
		{c, b, a},
		{b, a, c},
		{c, a, b},
	}
	for _, vs := range orderings {
		latest, ok := LatestVersion(vs)
		assert.True(t, ok)
		assert.Equal(t, int64(2), latest.ID)
	}
}

func TestLatestVersion_TieBrokenByID(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	versions := []domain.RowData{
		version(5, 10, at, 100),
		version(7, 10, at, 300),
		version(6, 10, at, 200),
	}

	latest, ok := LatestVersion(versions)

	assert.True(t, ok)
	assert.Equal(t, int64(7), latest.ID)
	assert.Equal(t, 300.0, latest.ExpenditureLimit)
}

func TestLatestVersion_Empty(t *testing.T) {
	_, ok := LatestVersion(nil)
	assert.False(t, ok)
}

func TestLatestPerRow_ResolvesEachRowIndependently(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	versions := []domain.RowData{
		version(1, 10, base, 100),
		version(2, 10, base.Add(time.Hour), 200),
		version(3, 11, base.Add(2*time.Hour), 50),
		version(4, 11, base, 999),
	}

	latest := LatestPerRow(versions)

	assert.Len(t, latest, 2)
	assert.Equal(t, int64(2), latest[10].ID)
	assert.Equal(t, int64(3), latest[11].ID)
}

func TestSumLatest_EachRowCountedOnce(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	versions := []domain.RowData{
		version(1, 10, base, 100),
		version(2, 10, base.Add(time.Hour), 200),
		version(3, 11, base, 50),
	}

	total := SumLatest(versions, func(v domain.RowData) float64 { return v.ExpenditureLimit })

	assert.Equal(t, 250.0, total)
}

func TestSumLatest_OlderVersionDoesNotChangeAggregate(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	versions := []domain.RowData{
		version(2, 10, base.Add(time.Hour), 200),
		version(3, 11, base, 50),
	}
	limit := func(v domain.RowData) float64 { return v.ExpenditureLimit }

	before := SumLatest(versions, limit)
	withOld := append(versions, version(1, 10, base, 9999))

	assert.Equal(t, before, SumLatest(withOld, limit))
}
