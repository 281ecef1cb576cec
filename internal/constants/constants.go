package constants

import "time"

const (
	IndexFetchTimeout = 10 * time.Second
	DataFetchTimeout  = 15 * time.Second
	RequestTimeout    = 30 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// A period's stats file never changes after publication, so lazily
	// loaded snapshots are cached for the process lifetime. Only the
	// index and the latest period are re-fetched on the refresh ticker.
	MinRefreshInterval = time.Minute
)
