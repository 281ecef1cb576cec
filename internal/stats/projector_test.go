package stats

import (
	"math"
	"testing"

	"showdown-stats/internal/domain"
)

func snapshotFixture() *domain.Snapshot {
	return &domain.Snapshot{
		Period:           "2025-07",
		TotalBattles:     1000,
		RatingThresholds: []int{0, 1500, 1760},
		Formats: []domain.Format{
			{
				Name:         "gen9ou",
				TotalBattles: 600,
				Percentage:   60,
				ByRating:     map[int]int{0: 600, 1500: 30, 1760: 12},
			},
			{
				Name:         "gen9randombattle",
				TotalBattles: 300,
				Percentage:   30,
				ByRating:     map[int]int{0: 300, 1500: 70},
			},
			{
				Name:         "gen9lc",
				TotalBattles: 100,
				Percentage:   10,
				ByRating:     map[int]int{0: 100},
			},
		},
	}
}

func findRow(t *testing.T, rows []domain.Row, name string) domain.Row {
	t.Helper()
	for _, r := range rows {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("row %q not found in %v", name, rows)
	return domain.Row{}
}

func TestProject_AggregatePassthrough(t *testing.T) {
	s := snapshotFixture()
	rows := Project(s, 0)

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for i, f := range s.Formats {
		if rows[i].Name != f.Name {
			t.Errorf("row %d: got name %q, want %q", i, rows[i].Name, f.Name)
		}
		if rows[i].Battles != f.TotalBattles {
			t.Errorf("%s: got %d battles, want %d", f.Name, rows[i].Battles, f.TotalBattles)
		}
		if rows[i].Percentage != f.Percentage {
			t.Errorf("%s: got %v%%, want stored %v%%", f.Name, rows[i].Percentage, f.Percentage)
		}
	}
}

func TestProject_RenormalizesPercentages(t *testing.T) {
	// Resolved at 1500: gen9ou 30, gen9randombattle 70, gen9lc dropped.
	// Shares must come from the surviving sum, not the stored percentages.
	s := snapshotFixture()
	rows := Project(s, 1500)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2: %v", len(rows), rows)
	}

	ou := findRow(t, rows, "gen9ou")
	if ou.Battles != 30 {
		t.Errorf("gen9ou battles: got %d, want 30", ou.Battles)
	}
	if math.Abs(ou.Percentage-30.0) > 1e-9 {
		t.Errorf("gen9ou percentage: got %v, want 30.0", ou.Percentage)
	}

	rb := findRow(t, rows, "gen9randombattle")
	if rb.Battles != 70 {
		t.Errorf("gen9randombattle battles: got %d, want 70", rb.Battles)
	}
	if math.Abs(rb.Percentage-70.0) > 1e-9 {
		t.Errorf("gen9randombattle percentage: got %v, want 70.0", rb.Percentage)
	}

	sum := 0.0
	for _, r := range rows {
		sum += r.Percentage
	}
	if math.Abs(sum-100.0) > 1e-9 {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
}

func TestProject_FallbackCountsFeedRenormalization(t *testing.T) {
	// 1600 has no exact bucket anywhere: gen9ou falls back to 1760 (12),
	// the others resolve to 0 and drop out.
	s := snapshotFixture()
	rows := Project(s, 1600)

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1: %v", len(rows), rows)
	}
	if rows[0].Name != "gen9ou" || rows[0].Battles != 12 {
		t.Errorf("got %+v, want gen9ou with 12 battles", rows[0])
	}
	if math.Abs(rows[0].Percentage-100.0) > 1e-9 {
		t.Errorf("sole survivor percentage: got %v, want 100", rows[0].Percentage)
	}
}

func TestProject_ZeroSurvivors(t *testing.T) {
	s := snapshotFixture()
	rows := Project(s, 9999)

	if len(rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(rows))
	}
	for _, r := range rows {
		if math.IsNaN(r.Percentage) {
			t.Errorf("NaN percentage in %+v", r)
		}
	}
}

func TestProject_DoesNotMutateSnapshot(t *testing.T) {
	s := snapshotFixture()

	first := Project(s, 1500)
	Project(s, 0)
	second := Project(s, 1500)

	if len(first) != len(second) {
		t.Fatalf("re-projection changed row count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("row %d differs between identical projections: %+v vs %+v", i, first[i], second[i])
		}
	}

	// A filtered render must not bleed into the stored aggregate fields.
	want := snapshotFixture()
	for i, f := range s.Formats {
		if f.TotalBattles != want.Formats[i].TotalBattles {
			t.Errorf("%s: TotalBattles mutated to %d", f.Name, f.TotalBattles)
		}
		if f.Percentage != want.Formats[i].Percentage {
			t.Errorf("%s: Percentage mutated to %v", f.Name, f.Percentage)
		}
	}

	after := Project(s, 0)
	for i, f := range want.Formats {
		if after[i].Battles != f.TotalBattles || after[i].Percentage != f.Percentage {
			t.Errorf("aggregate view after filtered render: got %+v, want %d/%v",
				after[i], f.TotalBattles, f.Percentage)
		}
	}
}
