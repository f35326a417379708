// Package organizer runs the per-file organization state machine.
//
// Each file moves through Discovered → Hashed → {Duplicate | Relocating} →
// Done | Failed. The organizer is synchronous and idempotent: one call
// handles one file end-to-end, a second pass over an already-organized tree
// does nothing, and one file's failure never affects another.
//
// Example usage:
//
//	org := organizer.New(organizer.Config{
//	    Index:   dupindex.New(),
//	    Planner: p,
//	    Scanner: s,
//	    Policy:  organizer.PolicyMove,
//	}, logger.Default())
//
//	result := org.Organize("/downloads/photo.jpg")
//	if result.Status == organizer.StatusFailed {
//	    log.Printf("failed: %v", result.Err)
//	}
package organizer

import (
	"fmt"

	"github.com/subhdotsol/FileOrganizer/pkg/dupindex"
	"github.com/subhdotsol/FileOrganizer/pkg/hasher"
	"github.com/subhdotsol/FileOrganizer/pkg/planner"
	"github.com/subhdotsol/FileOrganizer/pkg/scanner"
)

// Status is the terminal state of one file's organization.
type Status int

const (
	// StatusMoved means the file was relocated to its canonical destination.
	StatusMoved Status = iota

	// StatusDuplicate means the file's content was already canonical
	// elsewhere and the configured duplicate policy was applied.
	StatusDuplicate

	// StatusAlreadyOrganized means the file was found at its canonical
	// destination and nothing was done.
	StatusAlreadyOrganized

	// StatusSkipped means the path vanished or is outside the category
	// model (directory, symlink). Silent, not an error.
	StatusSkipped

	// StatusFailed means an I/O or path error stopped this file.
	StatusFailed
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusMoved:
		return "moved"
	case StatusDuplicate:
		return "duplicate"
	case StatusAlreadyOrganized:
		return "already-organized"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result records the outcome of organizing one file.
type Result struct {
	// Status is the terminal state.
	Status Status

	// Source is the file's original path.
	Source string

	// Dest is where the file ended up: the canonical destination for
	// moves, or the holding location for duplicates kept under the
	// move policy. Empty for skips, deletions, and failures.
	Dest string

	// Canonical is the canonical path for the file's digest when the
	// file was classified as a duplicate.
	Canonical string

	// Digest is the file's content digest, when hashing succeeded.
	Digest hasher.Digest

	// Err is the cause of a failure. Nil unless Status is StatusFailed.
	Err error
}

// DuplicatePolicy selects what happens to a file classified as duplicate.
type DuplicatePolicy string

const (
	// PolicyMove relocates duplicates into the holding directory.
	// This is the default: no content is ever silently discarded.
	PolicyMove DuplicatePolicy = "move"

	// PolicyDelete removes duplicate files. Opt-in only.
	PolicyDelete DuplicatePolicy = "delete"
)

// ParsePolicy converts a configuration string to a DuplicatePolicy.
//
// Returns an error for anything other than "move" or "delete".
func ParsePolicy(s string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(s) {
	case PolicyMove:
		return PolicyMove, nil
	case PolicyDelete:
		return PolicyDelete, nil
	default:
		return "", fmt.Errorf("%w: %q (want move or delete)", ErrUnknownPolicy, s)
	}
}

// Organizer processes one file at a time.
type Organizer interface {
	// Organize runs the state machine for the file at path.
	//
	// Parameters:
	//   - path: Absolute path to the candidate file
	//
	// Returns a Result describing the terminal state. Never panics and
	// never returns an error directly: failures are carried in the
	// Result so callers can keep processing other files.
	Organize(path string) Result

	// OrganizeEntry runs the state machine for an already-built entry.
	//
	// Used by one-shot mode, where the scanner has already walked the
	// tree and stat'ed every file.
	OrganizeEntry(entry scanner.FileEntry) Result
}

// Config contains organizer dependencies and policy.
type Config struct {
	// Index is the shared duplicate index.
	Index dupindex.Index

	// Planner computes destination paths.
	Planner planner.Planner

	// Scanner builds entries for watch-mode paths.
	Scanner scanner.Scanner

	// Policy selects duplicate disposition. Default: PolicyMove.
	Policy DuplicatePolicy
}
