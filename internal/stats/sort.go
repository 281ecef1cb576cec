package stats

import (
	"sort"
	"strings"

	"showdown-stats/internal/domain"
)

// Sort returns the rows ordered by the given state. The input slice is not
// modified. Ties keep their projected order (stable sort).
func Sort(rows []domain.Row, st domain.SortState) []domain.Row {
	sorted := make([]domain.Row, len(rows))
	copy(sorted, rows)

	less := lessFunc(sorted, st.Column)
	if st.Direction == domain.SortDesc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(sorted, less)
	return sorted
}

func lessFunc(rows []domain.Row, col domain.SortColumn) func(i, j int) bool {
	switch col {
	case domain.SortByName:
		return func(i, j int) bool {
			return strings.Compare(rows[i].Name, rows[j].Name) < 0
		}
	case domain.SortByPercentage:
		return func(i, j int) bool { return rows[i].Percentage < rows[j].Percentage }
	default:
		return func(i, j int) bool { return rows[i].Battles < rows[j].Battles }
	}
}

// Toggle applies a header click to the sort state. Clicking the active
// column flips its direction; clicking a new column selects it with its
// default direction: alphabetical for the name column, most-first for the
// numeric ones.
func Toggle(st domain.SortState, col domain.SortColumn) domain.SortState {
	if col == st.Column {
		if st.Direction == domain.SortAsc {
			st.Direction = domain.SortDesc
		} else {
			st.Direction = domain.SortAsc
		}
		return st
	}

	st.Column = col
	if col == domain.SortByName {
		st.Direction = domain.SortAsc
	} else {
		st.Direction = domain.SortDesc
	}
	return st
}
