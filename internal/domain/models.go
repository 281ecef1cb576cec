package domain

import (
	"time"
)

// Index lists the stats periods published by the upstream exporter.
// Periods are YYYY-MM strings, newest first.
type Index struct {
	Periods []string `json:"periods"`
	Latest  string   `json:"latest"`
}

// Format is one battle ruleset's usage numbers for a period.
// ByRating maps a rating threshold to the battle count among players at or
// above that rating. ByRating[0] is the unfiltered count and always equals
// TotalBattles in well-formed data.
type Format struct {
	Name         string      `json:"name"`
	TotalBattles int         `json:"total_battles"`
	Percentage   float64     `json:"percentage"`
	ByRating     map[int]int `json:"by_rating"`
}

// Snapshot is one period's full stats file, immutable once loaded.
type Snapshot struct {
	Period           string   `json:"period"`
	TotalBattles     int      `json:"total_battles"`
	RatingThresholds []int    `json:"rating_thresholds"`
	Formats          []Format `json:"formats"`

	// LoadID tags the load attempt that produced this snapshot, for log
	// correlation. Not part of the upstream file.
	LoadID   string    `json:"load_id"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Row is one projected table row: battle count resolved for the active
// rating filter and percentage renormalized over the surviving formats.
type Row struct {
	Name       string  `json:"name"`
	Battles    int     `json:"battles"`
	Percentage float64 `json:"percentage"`
}

type SortColumn string

const (
	SortByName       SortColumn = "name"
	SortByPercentage SortColumn = "percentage"
	SortByBattles    SortColumn = "battles"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState is the active column/direction pair driving row ordering.
type SortState struct {
	Column    SortColumn
	Direction SortDirection
}

// DefaultSortState is the order shown before any header interaction:
// most-played formats first.
func DefaultSortState() SortState {
	return SortState{Column: SortByBattles, Direction: SortDesc}
}

// ValidSortColumn reports whether c names a sortable column.
func ValidSortColumn(c SortColumn) bool {
	switch c {
	case SortByName, SortByPercentage, SortByBattles:
		return true
	}
	return false
}
