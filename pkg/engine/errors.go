package engine

import "errors"

// Fatal preflight errors. Everything else is per-file and reported in
// the run summary instead.
var (
	// ErrSourceRoot is returned when the source root is missing or unreadable.
	ErrSourceRoot = errors.New("source root missing or unreadable")

	// ErrDestRoot is returned when the destination root cannot be created.
	ErrDestRoot = errors.New("destination root not creatable")
)
