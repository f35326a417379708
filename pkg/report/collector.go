package report

import (
	"sync"
	"time"

	"github.com/subhdotsol/FileOrganizer/pkg/organizer"
)

// Collector accumulates organizer results into a Summary.
//
// Safe for concurrent use by the worker pool.
type Collector struct {
	mu      sync.Mutex
	summary Summary
	started time.Time
}

// NewCollector creates an empty collector and starts the run clock.
func NewCollector() *Collector {
	return &Collector{
		started: time.Now(),
	}
}

// Add records one organizer result.
func (c *Collector) Add(result organizer.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch result.Status {
	case organizer.StatusMoved:
		c.summary.Moved++
	case organizer.StatusDuplicate:
		c.summary.Duplicates++
		c.summary.DuplicateFiles = append(c.summary.DuplicateFiles, DuplicateFile{
			Source:    result.Source,
			Canonical: result.Canonical,
		})
	case organizer.StatusAlreadyOrganized:
		c.summary.AlreadyOrganized++
	case organizer.StatusSkipped:
		c.summary.Skipped++
	case organizer.StatusFailed:
		c.summary.Failed++
		cause := "unknown"
		if result.Err != nil {
			cause = result.Err.Error()
		}
		c.summary.FailedFiles = append(c.summary.FailedFiles, FailedFile{
			Source: result.Source,
			Cause:  cause,
		})
	}
}

// Summary returns a snapshot of the accumulated counts.
func (c *Collector) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.summary
	s.Duration = time.Since(c.started)

	// Copy the slices so the snapshot is immune to further Adds.
	s.DuplicateFiles = append([]DuplicateFile(nil), c.summary.DuplicateFiles...)
	s.FailedFiles = append([]FailedFile(nil), c.summary.FailedFiles...)

	return s
}

// HasFailures reports whether any file failed so far.
func (c *Collector) HasFailures() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.summary.Failed > 0
}
