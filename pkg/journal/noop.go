package journal

import "time"

// noopJournal discards everything. Used when journaling is disabled.
type noopJournal struct{}

// Noop returns a journal that records nothing.
//
// Every method succeeds; BeginRun still hands out identifiers so callers
// need no special casing.
func Noop() Journal {
	return noopJournal{}
}

// BeginRun implements Journal.BeginRun.
func (noopJournal) BeginRun(bool) (string, error) {
	return newRunID(time.Now()), nil
}

// Record implements Journal.Record.
func (noopJournal) Record(string, Outcome) error { return nil }

// FinishRun implements Journal.FinishRun.
func (noopJournal) FinishRun(RunSummary) error { return nil }

// Runs implements Journal.Runs.
func (noopJournal) Runs() ([]RunSummary, error) { return nil, nil }

// Outcomes implements Journal.Outcomes.
func (noopJournal) Outcomes(string) ([]Outcome, error) { return nil, nil }

// Close implements Journal.Close.
func (noopJournal) Close() error { return nil }
