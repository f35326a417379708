// Package engine drives whole organization runs.
//
// It wires the scanner, organizer, watcher, and journal together behind
// two modes: a one-shot pass over every file in the source tree, and a
// watch mode that runs the same pass up front and then reacts to
// debounced filesystem events for the life of the process. Both modes
// push files through a fixed-size worker pool; the engine guarantees a
// given path is never in two organizer invocations at once.
//
// Example usage:
//
//	e, err := engine.New(engine.Config{
//	    SourceRoot: "/downloads",
//	    Workers:    4,
//	}, journal.Noop(), logger.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := e.Run(ctx)
package engine

import (
	"context"
	"time"

	"github.com/subhdotsol/FileOrganizer/pkg/organizer"
	"github.com/subhdotsol/FileOrganizer/pkg/report"
)

// Engine runs the organizer over a source tree.
type Engine interface {
	// Run performs a one-shot pass over the whole source tree.
	//
	// Parameters:
	//   - ctx: Context for cancellation; cancelling stops intake and
	//     lets in-flight files finish
	//
	// Returns:
	//   - Summary of the run, including every failure and duplicate
	//   - Error only for fatal preflight conditions (source root
	//     missing/unreadable, destination not creatable); per-file
	//     failures are carried in the summary
	Run(ctx context.Context) (report.Summary, error)

	// Watch performs an initial one-shot pass, then organizes new
	// files as they stabilize, until the context is cancelled.
	//
	// Returns the cumulative summary once the watch ends.
	Watch(ctx context.Context) (report.Summary, error)
}

// Config contains engine configuration.
type Config struct {
	// SourceRoot is the directory tree to organize.
	SourceRoot string

	// DestRoot is where category directories are created.
	// Default: SourceRoot.
	DestRoot string

	// Workers is the worker pool size. Default: 4.
	Workers int

	// DebounceInterval is the watch-mode quiet period per path.
	// Default: 500ms.
	DebounceInterval time.Duration

	// Policy selects duplicate disposition. Default: move.
	Policy organizer.DuplicatePolicy

	// DuplicatesDirName is the holding directory name under DestRoot.
	// Default: "duplicates".
	DuplicatesDirName string

	// MaxProbes bounds collision disambiguation per file.
	// Default: 1000.
	MaxProbes int
}

// jobQueueSize buffers watch-mode dispatches between the event loop and
// the worker pool. Overflow spills into the loop's in-memory pending
// queue; the loop never blocks handing work to a full channel.
const jobQueueSize = 1024
