package report

import (
	"fmt"
	"io"
	"time"
)

// durationResolution rounds displayed durations to something readable.
const durationResolution = 10 * time.Millisecond

// simpleFormatter emits one line per fact, easy to grep.
type simpleFormatter struct {
	config Config
}

// FormatSummary implements Formatter.FormatSummary.
func (f *simpleFormatter) FormatSummary(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintf(w,
		"processed=%d moved=%d duplicates=%d already_organized=%d skipped=%d failed=%d duration=%s\n",
		s.Total(), s.Moved, s.Duplicates, s.AlreadyOrganized, s.Skipped, s.Failed,
		s.Duration.Round(durationResolution)); err != nil {
		return err
	}

	for _, d := range s.DuplicateFiles {
		if _, err := fmt.Fprintf(w, "duplicate source=%s canonical=%s\n", d.Source, d.Canonical); err != nil {
			return err
		}
	}

	for _, fail := range s.FailedFiles {
		if _, err := fmt.Fprintf(w, "failed source=%s cause=%q\n", fail.Source, fail.Cause); err != nil {
			return err
		}
	}

	return nil
}
