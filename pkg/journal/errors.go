package journal

import "errors"

// Common errors returned by the journal.
var (
	// ErrJournalClosed is returned when using a closed journal.
	ErrJournalClosed = errors.New("journal is closed")

	// ErrRunNotFound is returned when a run identifier is unknown.
	ErrRunNotFound = errors.New("run not found")
)
