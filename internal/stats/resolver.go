package stats

import (
	"sort"

	"showdown-stats/internal/domain"
)

// BattlesAtRating resolves a format's battle count for a requested rating
// threshold. The upstream files only report counts at a handful of rating
// floors, so a request between two floors falls back to the nearest higher
// one: a lower floor would re-admit the low-rated games the filter is meant
// to exclude. No bucket at or above the request means no qualifying battles.
func BattlesAtRating(f domain.Format, rating int) int {
	if rating == 0 {
		return f.TotalBattles
	}
	if n, ok := f.ByRating[rating]; ok {
		return n
	}

	best := -1
	for r := range f.ByRating {
		if r < rating {
			continue
		}
		if best == -1 || r < best {
			best = r
		}
	}
	if best == -1 {
		return 0
	}
	return f.ByRating[best]
}

// Thresholds returns the rating keys a format actually reports, ascending.
// Used by the detail view to list the per-rating breakdown.
func Thresholds(f domain.Format) []int {
	keys := make([]int, 0, len(f.ByRating))
	for r := range f.ByRating {
		keys = append(keys, r)
	}
	sort.Ints(keys)
	return keys
}
