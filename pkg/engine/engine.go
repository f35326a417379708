package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/subhdotsol/FileOrganizer/pkg/classify"
	"github.com/subhdotsol/FileOrganizer/pkg/dupindex"
	"github.com/subhdotsol/FileOrganizer/pkg/journal"
	"github.com/subhdotsol/FileOrganizer/pkg/logger"
	"github.com/subhdotsol/FileOrganizer/pkg/organizer"
	"github.com/subhdotsol/FileOrganizer/pkg/planner"
	"github.com/subhdotsol/FileOrganizer/pkg/report"
	"github.com/subhdotsol/FileOrganizer/pkg/scanner"
	"github.com/subhdotsol/FileOrganizer/pkg/watcher"
)

// engine implements the Engine interface.
type engine struct {
	config    Config
	logger    logger.Logger
	journal   journal.Journal
	organizer organizer.Organizer
	scanner   scanner.Scanner
	skipDirs  []string
	queueSize int
}

// New creates a new engine and wires its components.
//
// Parameters:
//   - cfg: Engine configuration
//   - j: Run journal; pass journal.Noop() to disable journaling
//   - log: Logger instance
//
// Returns:
//   - Configured Engine
//   - Error if configuration is invalid
func New(cfg Config, j journal.Journal, log logger.Logger) (Engine, error) {
	if cfg.SourceRoot == "" {
		return nil, fmt.Errorf("source root is required")
	}

	// Set defaults.
	if cfg.DestRoot == "" {
		cfg.DestRoot = cfg.SourceRoot
	}
	if cfg.Workers == 0 {
		cfg.Workers = 4
	}
	if cfg.DebounceInterval == 0 {
		cfg.DebounceInterval = 500 * time.Millisecond
	}
	if cfg.DuplicatesDirName == "" {
		cfg.DuplicatesDirName = "duplicates"
	}
	if j == nil {
		j = journal.Noop()
	}

	p := planner.New(planner.Config{
		Root:              cfg.DestRoot,
		DuplicatesDirName: cfg.DuplicatesDirName,
		MaxProbes:         cfg.MaxProbes,
	}, log)

	// The organizer's own output never re-enters the pipeline.
	skipDirs := make([]string, 0, len(classify.All())+1)
	for _, cat := range classify.All() {
		skipDirs = append(skipDirs, filepath.Join(cfg.DestRoot, cat.String()))
	}
	skipDirs = append(skipDirs, p.DuplicatesDir())

	s := scanner.New(scanner.Config{
		Root:     cfg.SourceRoot,
		SkipDirs: skipDirs,
	}, log)

	org, err := organizer.New(organizer.Config{
		Index:   dupindex.New(),
		Planner: p,
		Scanner: s,
		Policy:  cfg.Policy,
	}, log)
	if err != nil {
		return nil, err
	}

	return &engine{
		config:    cfg,
		logger:    log,
		journal:   j,
		organizer: org,
		scanner:   s,
		skipDirs:  skipDirs,
		queueSize: jobQueueSize,
	}, nil
}

// Run implements Engine.Run.
func (e *engine) Run(ctx context.Context) (report.Summary, error) {
	if err := e.preflight(); err != nil {
		return report.Summary{}, err
	}

	runID, err := e.journal.BeginRun(false)
	if err != nil {
		return report.Summary{}, fmt.Errorf("failed to begin journal run: %w", err)
	}

	collector := report.NewCollector()
	e.runPass(ctx, collector, runID)

	summary := collector.Summary()
	e.finishRun(runID, false, summary)

	return summary, nil
}

// Watch implements Engine.Watch.
func (e *engine) Watch(ctx context.Context) (report.Summary, error) {
	if err := e.preflight(); err != nil {
		return report.Summary{}, err
	}

	runID, err := e.journal.BeginRun(true)
	if err != nil {
		return report.Summary{}, fmt.Errorf("failed to begin journal run: %w", err)
	}

	collector := report.NewCollector()

	// Pre-existing files are organized exactly once, before subscribing.
	e.runPass(ctx, collector, runID)

	w, err := watcher.New(watcher.Config{
		DebounceInterval: e.config.DebounceInterval,
		IgnoreDirs:       e.skipDirs,
	}, e.logger)
	if err != nil {
		return collector.Summary(), fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil {
			e.logger.Warn("failed to close watcher", "error", closeErr)
		}
	}()

	if err := w.Start(ctx, e.config.SourceRoot); err != nil {
		return collector.Summary(), fmt.Errorf("failed to start watcher: %w", err)
	}

	e.watchLoop(ctx, w, collector, runID)

	summary := collector.Summary()
	e.finishRun(runID, true, summary)

	return summary, nil
}

// runPass scans the tree and pushes every entry through the worker pool.
func (e *engine) runPass(ctx context.Context, collector *report.Collector, runID string) {
	entries, err := e.scanner.Scan()
	if err != nil {
		// The root was readable at preflight; a failure now is a race
		// with external changes and scoped to this pass.
		e.logger.Error("scan failed", "error", err)
		return
	}

	jobs := make(chan scanner.FileEntry)

	var wg sync.WaitGroup
	for i := 0; i < e.config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for entry := range jobs {
				e.record(collector, runID, e.organizer.OrganizeEntry(entry))
			}
		}()
	}

feed:
	for _, entry := range entries {
		select {
		case jobs <- entry:
		case <-ctx.Done():
			e.logger.Info("pass cancelled, draining in-flight files")
			break feed
		}
	}

	close(jobs)
	wg.Wait()
}

// watchLoop consumes debounced events until the context ends.
//
// The inflight map enforces per-path ordering: a path being processed is
// not dispatched again; instead it is marked and re-dispatched once the
// current invocation completes, so only the latest stable state wins.
func (e *engine) watchLoop(ctx context.Context, w watcher.Watcher, collector *report.Collector, runID string) {
	jobs := make(chan string, e.queueSize)
	completions := make(chan string, e.config.Workers)

	var wg sync.WaitGroup
	for i := 0; i < e.config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				e.record(collector, runID, e.organizer.Organize(path))
				completions <- path
			}
		}()
	}

	// Value true means the path saw another event while in flight.
	inflight := make(map[string]bool)

	// Paths waiting for queue space. The loop is the only reader of
	// completions, so it must never block sending into jobs: a blocked
	// send here with the completion buffer full wedges the pool and the
	// loop against each other. Overflow waits in this slice instead.
	var pending []string

loop:
	for {
		// A nil channel disables the dispatch case until work is queued.
		var dispatch chan<- string
		var next string
		if len(pending) > 0 {
			dispatch = jobs
			next = pending[0]
		}

		select {
		case <-ctx.Done():
			break loop

		case dispatch <- next:
			pending = pending[1:]

		case event, ok := <-w.Events():
			if !ok {
				break loop
			}
			if _, busy := inflight[event.Path]; busy {
				inflight[event.Path] = true
				continue
			}
			inflight[event.Path] = false
			pending = append(pending, event.Path)

		case werr, ok := <-w.Errors():
			if !ok {
				break loop
			}
			e.logger.Error("watcher error", "error", werr)
			if errors.Is(werr, watcher.ErrCircuitBreakerOpen) {
				break loop
			}

		case path := <-completions:
			if inflight[path] {
				inflight[path] = false
				pending = append(pending, path)
				continue
			}
			delete(inflight, path)
		}
	}

	if err := w.Stop(); err != nil && !errors.Is(err, watcher.ErrNotStarted) {
		e.logger.Warn("failed to stop watcher", "error", err)
	}

	// Hand over whatever pending work still fits in the queue; the rest
	// is abandoned with the run.
flush:
	for _, path := range pending {
		select {
		case jobs <- path:
		default:
			break flush
		}
	}

	// Workers still drain the queue; their completion signals no longer
	// matter, so swallow them until the pool exits.
	go func() {
		for range completions {
		}
	}()

	close(jobs)
	wg.Wait()
	close(completions)
}

// record feeds one result to the collector and the journal.
func (e *engine) record(collector *report.Collector, runID string, result organizer.Result) {
	collector.Add(result)

	outcome := journal.Outcome{
		Path:      result.Source,
		Status:    result.Status.String(),
		Dest:      result.Dest,
		Canonical: result.Canonical,
		Timestamp: time.Now(),
	}
	if !result.Digest.IsZero() {
		outcome.Digest = result.Digest.String()
	}
	if result.Err != nil {
		outcome.Error = result.Err.Error()
	}

	if err := e.journal.Record(runID, outcome); err != nil {
		e.logger.Warn("failed to journal outcome",
			"path", result.Source,
			"error", err)
	}
}

// finishRun stores the run summary in the journal.
func (e *engine) finishRun(runID string, watch bool, s report.Summary) {
	err := e.journal.FinishRun(journal.RunSummary{
		ID:               runID,
		Watch:            watch,
		FinishedAt:       time.Now(),
		Moved:            s.Moved,
		Duplicates:       s.Duplicates,
		AlreadyOrganized: s.AlreadyOrganized,
		Skipped:          s.Skipped,
		Failed:           s.Failed,
	})
	if err != nil {
		e.logger.Warn("failed to finish journal run", "error", err)
	}
}

// preflight checks the fatal process-level conditions exactly once.
func (e *engine) preflight() error {
	if err := classify.Validate(); err != nil {
		return fmt.Errorf("extension table invalid: %w", err)
	}

	info, err := os.Stat(e.config.SourceRoot)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSourceRoot, e.config.SourceRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrSourceRoot, e.config.SourceRoot)
	}

	f, err := os.Open(e.config.SourceRoot) // #nosec G304: operator-supplied root
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSourceRoot, e.config.SourceRoot, err)
	}
	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		_ = f.Close()
		return fmt.Errorf("%w: %s: %v", ErrSourceRoot, e.config.SourceRoot, err)
	}
	if err := f.Close(); err != nil {
		e.logger.Warn("failed to close source root handle", "error", err)
	}

	if err := os.MkdirAll(e.config.DestRoot, 0750); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDestRoot, e.config.DestRoot, err)
	}

	return nil
}
