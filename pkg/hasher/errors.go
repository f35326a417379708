package hasher

import "errors"

// Common errors returned by the hasher.
var (
	// ErrOpen is returned when a file cannot be opened for hashing.
	ErrOpen = errors.New("failed to open file for hashing")

	// ErrRead is returned when a read fails partway through hashing.
	ErrRead = errors.New("failed to read file while hashing")
)
