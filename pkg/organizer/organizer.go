package organizer

import (
	"fmt"
	"os"
	"sync"

	"github.com/subhdotsol/FileOrganizer/pkg/classify"
	"github.com/subhdotsol/FileOrganizer/pkg/hasher"
	"github.com/subhdotsol/FileOrganizer/pkg/logger"
	"github.com/subhdotsol/FileOrganizer/pkg/planner"
	"github.com/subhdotsol/FileOrganizer/pkg/scanner"
)

// organizer implements the Organizer interface.
type organizer struct {
	config Config
	logger logger.Logger

	// dirLocks serializes target resolution and placement per
	// destination directory. The planner's probe and the move that
	// follows are not atomic on their own: unserialized, two workers
	// can resolve the same free name and the second move silently
	// replaces the first file.
	dirMu    sync.Mutex
	dirLocks map[string]*sync.Mutex
}

// New creates a new organizer.
//
// Parameters:
//   - cfg: Dependencies and duplicate policy
//   - log: Logger instance
//
// Returns:
//   - Configured Organizer
//   - Error if a required dependency is missing
func New(cfg Config, log logger.Logger) (Organizer, error) {
	if cfg.Index == nil {
		return nil, fmt.Errorf("duplicate index is required")
	}
	if cfg.Planner == nil {
		return nil, fmt.Errorf("planner is required")
	}
	if cfg.Scanner == nil {
		return nil, fmt.Errorf("scanner is required")
	}

	// Set defaults.
	if cfg.Policy == "" {
		cfg.Policy = PolicyMove
	}
	if cfg.Policy != PolicyMove && cfg.Policy != PolicyDelete {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, cfg.Policy)
	}

	log.Info("organizer created", "duplicate_policy", cfg.Policy)

	return &organizer{
		config:   cfg,
		logger:   log,
		dirLocks: make(map[string]*sync.Mutex),
	}, nil
}

// lockDir acquires the placement lock for dir, creating it on first use.
// The returned function releases the lock.
func (o *organizer) lockDir(dir string) func() {
	o.dirMu.Lock()
	mu, ok := o.dirLocks[dir]
	if !ok {
		mu = &sync.Mutex{}
		o.dirLocks[dir] = mu
	}
	o.dirMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// Organize implements Organizer.Organize.
func (o *organizer) Organize(path string) Result {
	// Discovered: build the entry, skipping silently on races with
	// external deletion and on non-regular files.
	entry, ok := o.config.Scanner.EntryFor(path)
	if !ok {
		return Result{Status: StatusSkipped, Source: path}
	}

	return o.OrganizeEntry(entry)
}

// OrganizeEntry implements Organizer.OrganizeEntry.
func (o *organizer) OrganizeEntry(entry scanner.FileEntry) Result {
	// Hashed.
	digest, err := hasher.FromFile(entry.Path)
	if err != nil {
		o.logger.Error("hashing failed",
			"path", entry.Path,
			"error", err)
		return Result{Status: StatusFailed, Source: entry.Path, Err: err}
	}

	// A file rewritten mid-hash produces a digest for bytes that no
	// longer exist. Re-stat and discard the digest if the file moved on.
	if err := o.verifyUnchanged(entry); err != nil {
		if os.IsNotExist(err) {
			return Result{Status: StatusSkipped, Source: entry.Path}
		}
		return Result{Status: StatusFailed, Source: entry.Path, Err: err}
	}

	// Decision: plan the prospective canonical path, then attempt to
	// claim the canonical slot.
	cat := classify.FromExtension(entry.Extension)
	dir := o.config.Planner.TargetDir(cat, entry.ModTime)

	if err := o.config.Planner.EnsureDir(dir); err != nil {
		return Result{Status: StatusFailed, Source: entry.Path, Digest: digest, Err: err}
	}

	unlock := o.lockDir(dir)

	target, err := o.config.Planner.ResolveTarget(dir, entry.Name, digest)
	if planner.IsContentPresent(err) {
		unlock()
		if target == entry.Path {
			// The file is already where it belongs. Keep the index
			// warm so later copies are flagged as duplicates.
			o.config.Index.Register(digest, entry.Path)
			return Result{
				Status: StatusAlreadyOrganized,
				Source: entry.Path,
				Dest:   entry.Path,
				Digest: digest,
			}
		}

		// Identical content already sits at the destination, left
		// there by an earlier run. It is canonical now.
		o.config.Index.Register(digest, target)
		return o.handleDuplicate(entry, digest, target)
	}
	if err != nil {
		unlock()
		o.logger.Error("path planning failed",
			"path", entry.Path,
			"error", err)
		return Result{Status: StatusFailed, Source: entry.Path, Digest: digest, Err: err}
	}

	if !o.config.Index.Register(digest, target) {
		unlock()
		canonical, _ := o.config.Index.Lookup(digest)
		return o.handleDuplicate(entry, digest, canonical)
	}

	// Relocating.
	err = moveFile(entry.Path, target)
	unlock()
	if err != nil {
		o.logger.Error("relocation failed",
			"path", entry.Path,
			"target", target,
			"error", err)
		return Result{Status: StatusFailed, Source: entry.Path, Digest: digest, Err: err}
	}

	o.logger.Info("file organized",
		"source", entry.Path,
		"dest", target,
		"category", cat.String())

	return Result{
		Status: StatusMoved,
		Source: entry.Path,
		Dest:   target,
		Digest: digest,
	}
}

// verifyUnchanged re-stats the entry and reports an error if the file was
// modified or replaced while it was being hashed.
func (o *organizer) verifyUnchanged(entry scanner.FileEntry) error {
	info, err := os.Lstat(entry.Path)
	if err != nil {
		return err
	}

	if info.Size() != entry.Size || !info.ModTime().Equal(entry.ModTime) {
		return fmt.Errorf("%w: %s", ErrModifiedDuringHash, entry.Path)
	}

	return nil
}

// handleDuplicate applies the configured duplicate policy.
//
// The canonical file is never touched. Under the move policy the source is
// relocated to the holding directory; under the delete policy it is
// removed. Either way the outcome is logged and reported, never silent.
func (o *organizer) handleDuplicate(entry scanner.FileEntry, digest hasher.Digest, canonical string) Result {
	o.logger.Info("duplicate detected",
		"path", entry.Path,
		"canonical", canonical,
		"policy", o.config.Policy)

	if o.config.Policy == PolicyDelete {
		if err := os.Remove(entry.Path); err != nil {
			return Result{
				Status:    StatusFailed,
				Source:    entry.Path,
				Canonical: canonical,
				Digest:    digest,
				Err:       fmt.Errorf("%w %s: %v", ErrRemoveDuplicate, entry.Path, err),
			}
		}
		return Result{
			Status:    StatusDuplicate,
			Source:    entry.Path,
			Canonical: canonical,
			Digest:    digest,
		}
	}

	holdDir := o.config.Planner.DuplicatesDir()
	if err := o.config.Planner.EnsureDir(holdDir); err != nil {
		return Result{
			Status:    StatusFailed,
			Source:    entry.Path,
			Canonical: canonical,
			Digest:    digest,
			Err:       err,
		}
	}

	unlock := o.lockDir(holdDir)

	target, err := o.config.Planner.ResolveTarget(holdDir, entry.Name, digest)
	if planner.IsContentPresent(err) {
		unlock()
		// The holding area already preserves this content; removing
		// the source loses nothing.
		if rmErr := os.Remove(entry.Path); rmErr != nil {
			return Result{
				Status:    StatusFailed,
				Source:    entry.Path,
				Canonical: canonical,
				Digest:    digest,
				Err:       fmt.Errorf("%w %s: %v", ErrRemoveDuplicate, entry.Path, rmErr),
			}
		}
		return Result{
			Status:    StatusDuplicate,
			Source:    entry.Path,
			Dest:      target,
			Canonical: canonical,
			Digest:    digest,
		}
	}
	if err != nil {
		unlock()
		return Result{
			Status:    StatusFailed,
			Source:    entry.Path,
			Canonical: canonical,
			Digest:    digest,
			Err:       err,
		}
	}

	err = moveFile(entry.Path, target)
	unlock()
	if err != nil {
		return Result{
			Status:    StatusFailed,
			Source:    entry.Path,
			Canonical: canonical,
			Digest:    digest,
			Err:       err,
		}
	}

	return Result{
		Status:    StatusDuplicate,
		Source:    entry.Path,
		Dest:      target,
		Canonical: canonical,
		Digest:    digest,
	}
}
