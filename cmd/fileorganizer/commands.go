package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/subhdotsol/FileOrganizer/pkg/config"
	"github.com/subhdotsol/FileOrganizer/pkg/engine"
	"github.com/subhdotsol/FileOrganizer/pkg/journal"
	"github.com/subhdotsol/FileOrganizer/pkg/logger"
	"github.com/subhdotsol/FileOrganizer/pkg/organizer"
	"github.com/subhdotsol/FileOrganizer/pkg/report"
)

// errFilesFailed signals that the pass completed but some files could not
// be organized. The summary output carries the detail; main maps this to
// a distinct exit code.
var errFilesFailed = errors.New("some files failed")

// organizeCommand runs a one-shot or watching organization pass.
type organizeCommand struct {
	source     string
	dest       string
	workers    int
	policy     string
	format     string
	compact    bool
	journal    bool
	debounce   time.Duration
	watch      bool
	configPath string
}

// Execute runs the organize command.
func (c *organizeCommand) Execute() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	policy, err := organizer.ParsePolicy(cfg.Organize.DuplicatePolicy)
	if err != nil {
		return err
	}

	j, err := c.openJournal(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := j.Close(); closeErr != nil {
			log.Error("failed to close journal", "error", closeErr)
		}
	}()

	eng, err := engine.New(engine.Config{
		SourceRoot:        cfg.Source,
		DestRoot:          cfg.Dest,
		Workers:           cfg.Organize.Workers,
		DebounceInterval:  cfg.Watch.Debounce,
		Policy:            policy,
		DuplicatesDirName: cfg.Organize.DuplicatesDir,
		MaxProbes:         cfg.Organize.MaxProbes,
	}, j, log)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	// Ctrl+C stops intake and lets in-flight files finish.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var summary report.Summary
	if c.watch {
		summary, err = eng.Watch(ctx)
	} else {
		summary, err = eng.Run(ctx)
	}
	if err != nil {
		return err
	}

	formatter := report.New(report.Config{
		Format:  cfg.Report.Format,
		Compact: cfg.Report.Compact,
	})
	if err := formatter.FormatSummary(os.Stdout, summary); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}

	if !c.watch && summary.Failed > 0 {
		return errFilesFailed
	}

	return nil
}

// loadConfig merges the config file with command-line flag overrides.
func (c *organizeCommand) loadConfig() (*config.Config, error) {
	cfg, err := config.NewLoader(c.configPath).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Flags win over file and environment.
	if c.source != "" {
		cfg.Source = c.source
	}
	if c.dest != "" {
		cfg.Dest = c.dest
	}
	if c.workers > 0 {
		cfg.Organize.Workers = c.workers
	}
	if c.policy != "" {
		cfg.Organize.DuplicatePolicy = c.policy
	}
	if c.format != "" {
		cfg.Report.Format = c.format
	}
	if c.compact {
		cfg.Report.Compact = true
	}
	if c.journal {
		cfg.Storage.JournalEnabled = true
	}
	if c.debounce > 0 {
		cfg.Watch.Debounce = c.debounce
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// openJournal opens the run journal, or a no-op one when disabled.
func (c *organizeCommand) openJournal(cfg *config.Config, log logger.Logger) (journal.Journal, error) {
	if !cfg.Storage.JournalEnabled {
		return journal.Noop(), nil
	}

	j, err := journal.NewBolt(journal.Config{
		DBPath: cfg.Storage.JournalPath,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return j, nil
}

// runsCommand inspects recorded runs.
type runsCommand struct {
	journalPath string
	configPath  string
}

// Execute runs the runs command. With no arguments it lists recorded
// runs; with a run ID it lists that run's per-file outcomes.
func (c *runsCommand) Execute(args []string) error {
	cfg, err := config.NewLoader(c.configPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path := c.journalPath
	if path == "" {
		path = cfg.Storage.JournalPath
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("no journal at %s (record runs with -journal first)", path)
	}

	log := logger.New(logger.Config{
		Level:  "error",
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	j, err := journal.NewBolt(journal.Config{DBPath: path}, log)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() {
		if closeErr := j.Close(); closeErr != nil {
			log.Error("failed to close journal", "error", closeErr)
		}
	}()

	if len(args) > 0 {
		return c.showOutcomes(j, args[0])
	}
	return c.listRuns(j)
}

// listRuns prints one line per recorded run.
func (c *runsCommand) listRuns(j journal.Journal) error {
	runs, err := j.Runs()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("Found %d run(s):\n\n", len(runs))
	for _, r := range runs {
		mode := "run"
		if r.Watch {
			mode = "watch"
		}
		fmt.Printf("  %s\n", r.ID)
		fmt.Printf("    Mode: %s | Started: %s\n", mode, r.StartedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("    Moved: %d | Duplicates: %d | Already organized: %d | Skipped: %d | Failed: %d\n",
			r.Moved, r.Duplicates, r.AlreadyOrganized, r.Skipped, r.Failed)
		fmt.Println()
	}

	return nil
}

// showOutcomes prints every per-file outcome of one run.
func (c *runsCommand) showOutcomes(j journal.Journal, runID string) error {
	outcomes, err := j.Outcomes(runID)
	if err != nil {
		return fmt.Errorf("failed to read run %s: %w", runID, err)
	}

	fmt.Printf("Run %s: %d file(s)\n\n", runID, len(outcomes))
	for _, o := range outcomes {
		fmt.Printf("  %-18s %s\n", o.Status, o.Path)
		if o.Dest != "" {
			fmt.Printf("    %-16s %s\n", "dest:", o.Dest)
		}
		if o.Canonical != "" {
			fmt.Printf("    %-16s %s\n", "canonical:", o.Canonical)
		}
		if o.Error != "" {
			fmt.Printf("    %-16s %s\n", "error:", o.Error)
		}
	}

	return nil
}
