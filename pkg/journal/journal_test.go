package journal

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/subhdotsol/FileOrganizer/pkg/logger"
)

func newTestJournal(t *testing.T) Journal {
	t.Helper()

	j, err := NewBolt(Config{
		DBPath: filepath.Join(t.TempDir(), "journal.db"),
	}, logger.Noop())
	if err != nil {
		t.Fatalf("NewBolt() error = %v", err)
	}

	t.Cleanup(func() {
		if closeErr := j.Close(); closeErr != nil {
			t.Logf("Close() error = %v", closeErr)
		}
	})

	return j
}

func TestBeginRun(t *testing.T) {
	j := newTestJournal(t)

	runID, err := j.BeginRun(false)
	if err != nil {
		t.Fatalf("BeginRun() error = %v", err)
	}
	if runID == "" {
		t.Fatal("BeginRun() returned empty run ID")
	}

	runs, err := j.Runs()
	if err != nil {
		t.Fatalf("Runs() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Runs() returned %d runs, want 1", len(runs))
	}
	if runs[0].ID != runID {
		t.Errorf("run ID = %q, want %q", runs[0].ID, runID)
	}
	if runs[0].StartedAt.IsZero() {
		t.Error("run has zero start time")
	}
}

func TestRecordAndOutcomes(t *testing.T) {
	j := newTestJournal(t)

	runID, err := j.BeginRun(true)
	if err != nil {
		t.Fatalf("BeginRun() error = %v", err)
	}

	recorded := []Outcome{
		{Path: "/src/a.txt", Status: "moved", Dest: "/dst/Documents/2026-08-24/a.txt"},
		{Path: "/src/b.txt", Status: "duplicate", Canonical: "/dst/Documents/2026-08-24/a.txt"},
		{Path: "/src/c.txt", Status: "failed", Error: "permission denied"},
	}

	for _, o := range recorded {
		if recordErr := j.Record(runID, o); recordErr != nil {
			t.Fatalf("Record() error = %v", recordErr)
		}
	}

	outcomes, err := j.Outcomes(runID)
	if err != nil {
		t.Fatalf("Outcomes() error = %v", err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("Outcomes() returned %d, want 3", len(outcomes))
	}

	// Recording order is preserved.
	for i, o := range outcomes {
		if o.Path != recorded[i].Path {
			t.Errorf("outcome %d path = %q, want %q", i, o.Path, recorded[i].Path)
		}
		if o.Status != recorded[i].Status {
			t.Errorf("outcome %d status = %q, want %q", i, o.Status, recorded[i].Status)
		}
		if o.Timestamp.IsZero() {
			t.Errorf("outcome %d has zero timestamp", i)
		}
	}
}

func TestRecordUnknownRun(t *testing.T) {
	j := newTestJournal(t)

	err := j.Record("20990101T000000.000000000", Outcome{Path: "/x", Status: "moved"})
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Record() error = %v, want ErrRunNotFound", err)
	}
}

func TestFinishRun(t *testing.T) {
	j := newTestJournal(t)

	runID, err := j.BeginRun(false)
	if err != nil {
		t.Fatalf("BeginRun() error = %v", err)
	}

	summary := RunSummary{
		ID:         runID,
		Moved:      5,
		Duplicates: 2,
		Failed:     1,
	}
	if finishErr := j.FinishRun(summary); finishErr != nil {
		t.Fatalf("FinishRun() error = %v", finishErr)
	}

	runs, err := j.Runs()
	if err != nil {
		t.Fatalf("Runs() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Runs() returned %d runs, want 1", len(runs))
	}
	if runs[0].Moved != 5 || runs[0].Duplicates != 2 || runs[0].Failed != 1 {
		t.Errorf("finished run = %+v, counts not persisted", runs[0])
	}
	if runs[0].FinishedAt.IsZero() {
		t.Error("FinishRun() did not set finish time")
	}
	if runs[0].StartedAt.IsZero() {
		t.Error("FinishRun() lost the recorded start time")
	}
}

func TestFinishUnknownRun(t *testing.T) {
	j := newTestJournal(t)

	err := j.FinishRun(RunSummary{ID: "20990101T000000.000000000"})
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("FinishRun() error = %v, want ErrRunNotFound", err)
	}
}

func TestRunsChronological(t *testing.T) {
	j := newTestJournal(t)

	first, err := j.BeginRun(false)
	if err != nil {
		t.Fatalf("BeginRun() error = %v", err)
	}

	// Run IDs have nanosecond resolution; a tiny sleep guarantees distinct IDs.
	time.Sleep(time.Millisecond)

	second, err := j.BeginRun(false)
	if err != nil {
		t.Fatalf("BeginRun() error = %v", err)
	}

	runs, err := j.Runs()
	if err != nil {
		t.Fatalf("Runs() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Runs() returned %d runs, want 2", len(runs))
	}
	if runs[0].ID != first || runs[1].ID != second {
		t.Errorf("runs out of order: %q, %q", runs[0].ID, runs[1].ID)
	}
}

func TestClosedJournal(t *testing.T) {
	j, err := NewBolt(Config{
		DBPath: filepath.Join(t.TempDir(), "journal.db"),
	}, logger.Noop())
	if err != nil {
		t.Fatalf("NewBolt() error = %v", err)
	}

	if closeErr := j.Close(); closeErr != nil {
		t.Fatalf("Close() error = %v", closeErr)
	}
	// Double close is a no-op.
	if closeErr := j.Close(); closeErr != nil {
		t.Errorf("second Close() error = %v", closeErr)
	}

	if _, beginErr := j.BeginRun(false); !errors.Is(beginErr, ErrJournalClosed) {
		t.Errorf("BeginRun() after close error = %v, want ErrJournalClosed", beginErr)
	}
}

func TestNoop(t *testing.T) {
	j := Noop()

	runID, err := j.BeginRun(true)
	if err != nil {
		t.Fatalf("Noop BeginRun() error = %v", err)
	}
	if runID == "" {
		t.Error("Noop BeginRun() returned empty ID")
	}

	if recordErr := j.Record(runID, Outcome{Path: "/x", Status: "moved"}); recordErr != nil {
		t.Errorf("Noop Record() error = %v", recordErr)
	}
	if finishErr := j.FinishRun(RunSummary{ID: runID}); finishErr != nil {
		t.Errorf("Noop FinishRun() error = %v", finishErr)
	}

	outcomes, err := j.Outcomes(runID)
	if err != nil {
		t.Fatalf("Noop Outcomes() error = %v", err)
	}
	if len(outcomes) != 0 {
		t.Errorf("Noop Outcomes() returned %d outcomes, want 0", len(outcomes))
	}
}
