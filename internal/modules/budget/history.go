package budget

import "github.com/kokolodziejska/zagrane/internal/domain"

// LatestVersion picks the authoritative version out of one row's history:
// greatest LastUpdate wins, ties broken by greatest ID. Selection does not
// depend on the order versions were fetched in.
func LatestVersion(versions []domain.RowData) (domain.RowData, bool) {
	if len(versions) == 0 {
		return domain.RowData{}, false
	}

	best := versions[0]
	for _, v := range versions[1:] {
		if newer(v, best) {
			best = v
		}
	}
	return best, true
}

// LatestPerRow resolves the authoritative version independently for every row
// present in versions.
func LatestPerRow(versions []domain.RowData) map[int64]domain.RowData {
	latest := make(map[int64]domain.RowData)
	for _, v := range versions {
		cur, ok := latest[v.RowID]
		if !ok || newer(v, cur) {
			latest[v.RowID] = v
		}
	}
	return latest
}

// SumLatest sums field over the authoritative versions only. Each logical row
// contributes exactly once no matter how much history it carries.
func SumLatest(versions []domain.RowData, field func(domain.RowData) float64) float64 {
	total := 0.0
	for _, v := range LatestPerRow(versions) {
		total += field(v)
	}
	return total
}

func newer(a, b domain.RowData) bool {
	if a.LastUpdate.After(b.LastUpdate) {
		return true
	}
	if a.LastUpdate.Equal(b.LastUpdate) {
		return a.ID > b.ID
	}
	return false
}
