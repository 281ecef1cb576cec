package stats

import (
	"showdown-stats/internal/domain"
)

// Project derives the display rows for a snapshot under a rating filter.
//
// rating == 0 is the aggregate view: every format passes through with its
// stored totals and precomputed percentage untouched. A non-zero rating
// resolves each format's count via BattlesAtRating, drops formats that
// resolve to zero, and recomputes every survivor's percentage as its share
// of the surviving total, so the filtered column still sums to 100.
//
// The snapshot is never mutated; projecting twice yields identical output.
func Project(s *domain.Snapshot, rating int) []domain.Row {
	if rating == 0 {
		rows := make([]domain.Row, len(s.Formats))
		for i, f := range s.Formats {
			rows[i] = domain.Row{
				Name:       f.Name,
				Battles:    f.TotalBattles,
				Percentage: f.Percentage,
			}
		}
		return rows
	}

	rows := make([]domain.Row, 0, len(s.Formats))
	total := 0
	for _, f := range s.Formats {
		n := BattlesAtRating(f, rating)
		if n == 0 {
			continue
		}
		rows = append(rows, domain.Row{Name: f.Name, Battles: n})
		total += n
	}

	for i := range rows {
		if total > 0 {
			rows[i].Percentage = float64(rows[i].Battles) / float64(total) * 100
		}
	}
	return rows
}
