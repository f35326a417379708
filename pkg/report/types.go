// Package report accumulates per-file outcomes and renders run summaries.
//
// Every failed file is individually identifiable (source path plus cause)
// and every duplicate is listed with its canonical path, distinct from
// failures. Output formats: table (default), json, simple.
//
// Example usage:
//
//	c := report.NewCollector()
//	for _, r := range results {
//	    c.Add(r)
//	}
//	f := report.New(report.Config{Format: report.FormatTable})
//	f.FormatSummary(os.Stdout, c.Summary())
package report

import (
	"time"
)

// Output formats.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatSimple = "simple"
)

// FailedFile identifies one file that could not be organized.
type FailedFile struct {
	// Source is the file's original path.
	Source string `json:"source"`

	// Cause is the failure description.
	Cause string `json:"cause"`
}

// DuplicateFile identifies one file classified as a duplicate.
type DuplicateFile struct {
	// Source is the file's original path.
	Source string `json:"source"`

	// Canonical is the destination path holding the first-seen copy.
	Canonical string `json:"canonical"`
}

// Summary describes one organizer run.
type Summary struct {
	// Per-status counts.
	Moved            int `json:"moved"`
	Duplicates       int `json:"duplicates"`
	AlreadyOrganized int `json:"already_organized"`
	Skipped          int `json:"skipped"`
	Failed           int `json:"failed"`

	// Duration is the run's wall-clock time.
	Duration time.Duration `json:"duration"`

	// DuplicateFiles lists every duplicate with its canonical path.
	DuplicateFiles []DuplicateFile `json:"duplicate_files,omitempty"`

	// FailedFiles lists every failure with its cause.
	FailedFiles []FailedFile `json:"failed_files,omitempty"`
}

// Total returns the number of files that reached a terminal state.
func (s Summary) Total() int {
	return s.Moved + s.Duplicates + s.AlreadyOrganized + s.Skipped + s.Failed
}

// Config contains formatter configuration.
type Config struct {
	// Format selects the output format (table, json, simple).
	// Default: table.
	Format string

	// Compact suppresses headers and indentation.
	Compact bool
}
