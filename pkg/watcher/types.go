// Package watcher provides real-time file system monitoring.
//
// It uses fsnotify to watch a source tree for new and modified files and
// converts the raw, bursty event stream into a clean stream of stable
// paths: per-path debouncing coalesces rapid events (a file written in
// chunks fires once, after a quiet period), directories created under the
// root join the watch set automatically, and events inside the organizer's
// own output directories are dropped so the tool never reacts to itself.
//
// Example usage:
//
//	w, err := watcher.New(watcher.Config{
//	    DebounceInterval: 500 * time.Millisecond,
//	}, logger.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	if err := w.Start(ctx, "/downloads"); err != nil {
//	    log.Fatal(err)
//	}
//
//	for event := range w.Events() {
//	    fmt.Printf("stable: %s\n", event.Path)
//	}
package watcher

import (
	"context"
	"time"
)

// Op describes a file operation type.
type Op uint32

// File operation types.
const (
	OpCreate Op = 1 << iota // File created or renamed into place
	OpWrite                 // File modified
)

// String returns a human-readable operation name.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpWrite:
		return "WRITE"
	default:
		return "UNKNOWN"
	}
}

// Event represents a debounced, stable file system event.
type Event struct {
	// Path is the absolute path to the file that triggered the event.
	Path string

	// Op is the last operation observed before the path went quiet.
	Op Op

	// Timestamp is when the last raw event occurred.
	Timestamp time.Time
}

// Watcher provides file system monitoring.
type Watcher interface {
	// Start begins watching the source root, recursively.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - root: Source directory to watch
	//
	// Returns error if the root cannot be watched. Event processing
	// runs in the background until the context is cancelled or Stop
	// is called.
	Start(ctx context.Context, root string) error

	// Stop gracefully shuts down event processing.
	//
	// Returns error if the watcher was never started.
	Stop() error

	// Events returns the channel of debounced stable-path events.
	//
	// A path appears here once per burst of raw events, after the
	// configured quiet period with no further activity on that path.
	Events() <-chan Event

	// Errors returns the channel for non-fatal watcher errors.
	Errors() <-chan error

	// Close releases all watcher resources.
	Close() error
}

// Config contains watcher configuration.
type Config struct {
	// DebounceInterval is the quiet period a path must observe before
	// its event is emitted. Events arriving inside the window reset it.
	// Default: 500ms.
	DebounceInterval time.Duration

	// IgnoreDirs are absolute directory paths whose events are dropped,
	// typically the organizer's destination category directories and
	// the duplicates holding area.
	IgnoreDirs []string

	// CircuitBreakerThreshold is the number of consecutive fsnotify
	// failures before the watcher reports itself broken.
	// Default: 5.
	CircuitBreakerThreshold int
}
