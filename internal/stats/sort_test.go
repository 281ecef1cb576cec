package stats

import (
	"testing"

	"showdown-stats/internal/domain"
)

func sortFixture() []domain.Row {
	return []domain.Row{
		{Name: "gen9ou", Battles: 600, Percentage: 60},
		{Name: "gen9lc", Battles: 100, Percentage: 10},
		{Name: "gen9randombattle", Battles: 300, Percentage: 30},
	}
}

func names(rows []domain.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func assertOrder(t *testing.T, rows []domain.Row, want ...string) {
	t.Helper()
	got := names(rows)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSort_Orders(t *testing.T) {
	rows := sortFixture()

	assertOrder(t,
		Sort(rows, domain.SortState{Column: domain.SortByName, Direction: domain.SortAsc}),
		"gen9lc", "gen9ou", "gen9randombattle")

	assertOrder(t,
		Sort(rows, domain.SortState{Column: domain.SortByName, Direction: domain.SortDesc}),
		"gen9randombattle", "gen9ou", "gen9lc")

	assertOrder(t,
		Sort(rows, domain.SortState{Column: domain.SortByBattles, Direction: domain.SortDesc}),
		"gen9ou", "gen9randombattle", "gen9lc")

	assertOrder(t,
		Sort(rows, domain.SortState{Column: domain.SortByPercentage, Direction: domain.SortAsc}),
		"gen9lc", "gen9randombattle", "gen9ou")
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	rows := sortFixture()
	Sort(rows, domain.SortState{Column: domain.SortByName, Direction: domain.SortAsc})
	assertOrder(t, rows, "gen9ou", "gen9lc", "gen9randombattle")
}

func TestSort_StableOnTies(t *testing.T) {
	rows := []domain.Row{
		{Name: "b", Battles: 50, Percentage: 25},
		{Name: "d", Battles: 50, Percentage: 25},
		{Name: "a", Battles: 50, Percentage: 25},
		{Name: "c", Battles: 100, Percentage: 50},
	}

	// Every battle count ties except "c"; tied rows keep input order in
	// both directions.
	assertOrder(t,
		Sort(rows, domain.SortState{Column: domain.SortByBattles, Direction: domain.SortDesc}),
		"c", "b", "d", "a")
	assertOrder(t,
		Sort(rows, domain.SortState{Column: domain.SortByBattles, Direction: domain.SortAsc}),
		"b", "d", "a", "c")
}

func TestToggle_StateMachine(t *testing.T) {
	st := domain.DefaultSortState()
	if st.Column != domain.SortByBattles || st.Direction != domain.SortDesc {
		t.Fatalf("default state: got %+v", st)
	}

	st = Toggle(st, domain.SortByName)
	if st.Column != domain.SortByName || st.Direction != domain.SortAsc {
		t.Fatalf("after clicking name: got %+v, want {name asc}", st)
	}

	st = Toggle(st, domain.SortByName)
	if st.Column != domain.SortByName || st.Direction != domain.SortDesc {
		t.Fatalf("after clicking name again: got %+v, want {name desc}", st)
	}

	st = Toggle(st, domain.SortByPercentage)
	if st.Column != domain.SortByPercentage || st.Direction != domain.SortDesc {
		t.Fatalf("after switching to percentage: got %+v, want {percentage desc}", st)
	}

	st = Toggle(st, domain.SortByBattles)
	if st.Column != domain.SortByBattles || st.Direction != domain.SortDesc {
		t.Fatalf("after switching to battles: got %+v, want {battles desc}", st)
	}
}
