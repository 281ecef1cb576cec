package domain

import "errors"

// Load-boundary failure taxonomy. Handlers match these with errors.Is and
// render an inline error page; nothing here escapes as a panic.
var (
	ErrIndexFetch     = errors.New("index fetch failed")
	ErrDataFetch      = errors.New("stats fetch failed")
	ErrMalformedData  = errors.New("malformed stats data")
	ErrFormatNotFound = errors.New("format not found")
	ErrUnknownPeriod  = errors.New("unknown period")
)
