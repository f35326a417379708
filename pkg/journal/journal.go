// Package journal persists a record of what each organizer run did.
//
// The journal is an audit trail, not working state: the duplicate index is
// rebuilt from scratch by rehashing on every run and never consults the
// journal. Each run gets an identifier; per-file outcomes and a final run
// summary are stored under it.
//
// Example usage:
//
//	j, err := journal.NewBolt(journal.Config{DBPath: "~/.fileorganizer/journal.db"}, log)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer j.Close()
//
//	runID, _ := j.BeginRun(false)
//	j.Record(runID, journal.Outcome{Path: "/d/a.txt", Status: "moved"})
//	j.FinishRun(summary)
package journal

import (
	"time"
)

// Outcome is the persisted form of one file's terminal state.
type Outcome struct {
	// Path is the file's original path.
	Path string `json:"path"`

	// Status is the terminal state name (moved, duplicate, failed, ...).
	Status string `json:"status"`

	// Dest is where the file ended up, when it moved.
	Dest string `json:"dest,omitempty"`

	// Canonical is the canonical path for duplicates.
	Canonical string `json:"canonical,omitempty"`

	// Digest is the hex content digest, when hashing succeeded.
	Digest string `json:"digest,omitempty"`

	// Error is the failure cause, when Status is failed.
	Error string `json:"error,omitempty"`

	// Timestamp is when the outcome was reached.
	Timestamp time.Time `json:"timestamp"`
}

// RunSummary is the persisted form of one whole run.
type RunSummary struct {
	// ID identifies the run.
	ID string `json:"id"`

	// Watch reports whether the run was in watch mode.
	Watch bool `json:"watch"`

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// Per-status counts.
	Moved            int `json:"moved"`
	Duplicates       int `json:"duplicates"`
	AlreadyOrganized int `json:"already_organized"`
	Skipped          int `json:"skipped"`
	Failed           int `json:"failed"`
}

// Journal records runs and their per-file outcomes.
type Journal interface {
	// BeginRun opens a new run record.
	//
	// Parameters:
	//   - watch: Whether this run is in watch mode
	//
	// Returns the new run's identifier.
	BeginRun(watch bool) (string, error)

	// Record appends one file outcome to a run.
	Record(runID string, outcome Outcome) error

	// FinishRun stores the final summary for a run.
	//
	// The summary's ID selects the run; BeginRun must have created it.
	FinishRun(summary RunSummary) error

	// Runs returns all stored run summaries, oldest first.
	Runs() ([]RunSummary, error)

	// Outcomes returns a run's outcomes in recording order.
	Outcomes(runID string) ([]Outcome, error)

	// Close releases journal resources.
	Close() error
}

// runIDLayout formats run start times into identifiers that sort
// chronologically as strings.
const runIDLayout = "20060102T150405.000000000"

// newRunID derives a run identifier from a start time.
func newRunID(start time.Time) string {
	return start.UTC().Format(runIDLayout)
}
