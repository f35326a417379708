// Package planner computes destination paths for organized files.
//
// A file's destination directory is derived from its category and its
// last-modified date: <root>/<Category>/<YYYY-MM-DD>/. Within that
// directory the planner resolves name collisions deterministically by
// probing "name.ext", "name (1).ext", "name (2).ext", ... and picking the
// smallest unused disambiguator. A collision against a file with identical
// content is not a collision at all: the planner reports it so the caller
// can treat the file as a duplicate instead of renaming it.
//
// Example usage:
//
//	p := planner.New(planner.Config{Root: "/sorted"}, logger.Default())
//	dir := p.TargetDir(classify.Images, modTime)
//	if err := p.EnsureDir(dir); err != nil { ... }
//	target, err := p.ResolveTarget(dir, "photo.jpg", digest)
package planner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/subhdotsol/FileOrganizer/pkg/classify"
	"github.com/subhdotsol/FileOrganizer/pkg/hasher"
	"github.com/subhdotsol/FileOrganizer/pkg/logger"
)

// dateLayout is the day-granularity directory name format.
const dateLayout = "2006-01-02"

// Planner computes and prepares destination paths.
type Planner interface {
	// TargetDir returns the destination directory for a category and
	// modification time: <root>/<Category>/<YYYY-MM-DD>.
	//
	// Pure computation; nothing is created.
	TargetDir(cat classify.Category, modTime time.Time) string

	// EnsureDir creates dir and any missing parents.
	//
	// Creating an already-existing directory is a no-op, not an error.
	// Returns an error wrapping ErrCreateDir if creation fails.
	EnsureDir(dir string) error

	// ResolveTarget returns a collision-free target path for a file named
	// name inside dir.
	//
	// Parameters:
	//   - dir: Destination directory (must already exist)
	//   - name: Source file's base name
	//   - digest: Content digest of the file being placed
	//
	// Probes name, then "name (1)", "name (2)", ... and returns the first
	// unoccupied path. When a probe hits an existing file, that occupant
	// is hashed: equal digests mean the content is already present at the
	// occupant's path, and ResolveTarget returns the occupant path with
	// ErrContentPresent; unequal digests continue the probe.
	//
	// Returns ErrProbesExhausted when the bounded probe limit is reached.
	//
	// The probe is a point-in-time check of the directory. Callers
	// placing files concurrently must serialize ResolveTarget and the
	// placement that follows per directory, or two of them can be
	// handed the same free name.
	ResolveTarget(dir, name string, digest hasher.Digest) (string, error)

	// DuplicatesDir returns the holding directory for duplicate files.
	DuplicatesDir() string
}

// Config contains planner configuration.
type Config struct {
	// Root is the destination root directory.
	Root string

	// DuplicatesDirName is the holding directory name for duplicates,
	// relative to Root. Default: "duplicates".
	DuplicatesDirName string

	// MaxProbes bounds the disambiguator search per file.
	// Default: 1000.
	MaxProbes int
}

// planner implements the Planner interface.
type planner struct {
	config Config
	logger logger.Logger
}

// New creates a new path planner.
//
// Parameters:
//   - cfg: Planner configuration
//   - log: Logger instance
//
// Returns a configured Planner.
func New(cfg Config, log logger.Logger) Planner {
	// Set defaults.
	if cfg.MaxProbes == 0 {
		cfg.MaxProbes = 1000
	}
	if cfg.DuplicatesDirName == "" {
		cfg.DuplicatesDirName = "duplicates"
	}

	return &planner{
		config: cfg,
		logger: log,
	}
}

// TargetDir implements Planner.TargetDir.
func (p *planner) TargetDir(cat classify.Category, modTime time.Time) string {
	return filepath.Join(p.config.Root, cat.String(), modTime.Format(dateLayout))
}

// DuplicatesDir implements Planner.DuplicatesDir.
func (p *planner) DuplicatesDir() string {
	return filepath.Join(p.config.Root, p.config.DuplicatesDirName)
}

// EnsureDir implements Planner.EnsureDir.
func (p *planner) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("%w %s: %v", ErrCreateDir, dir, err)
	}
	return nil
}

// ResolveTarget implements Planner.ResolveTarget.
func (p *planner) ResolveTarget(dir, name string, digest hasher.Digest) (string, error) {
	ext := filepath.Ext(name)
	stem := name[:len(name)-len(ext)]

	for n := 0; n <= p.config.MaxProbes; n++ {
		candidate := filepath.Join(dir, disambiguate(stem, ext, n))

		info, err := os.Lstat(candidate)
		if err != nil {
			if os.IsNotExist(err) {
				return candidate, nil
			}
			return "", fmt.Errorf("%w %s: %v", ErrProbe, candidate, err)
		}

		if !info.Mode().IsRegular() {
			// A directory or symlink holds the name; keep probing.
			continue
		}

		occupantDigest, err := hasher.FromFile(candidate)
		if err != nil {
			return "", fmt.Errorf("hashing occupant: %w", err)
		}

		if occupantDigest == digest {
			p.logger.Debug("target already holds identical content",
				"path", candidate)
			return candidate, ErrContentPresent
		}
	}

	return "", fmt.Errorf("%w: %s in %s after %d attempts",
		ErrProbesExhausted, name, dir, p.config.MaxProbes)
}

// disambiguate builds the nth candidate name for a stem/extension pair.
//
// n == 0 is the plain name; n > 0 appends " (n)" before the extension.
func disambiguate(stem, ext string, n int) string {
	if n == 0 {
		return stem + ext
	}
	return fmt.Sprintf("%s (%d)%s", stem, n, ext)
}

// IsContentPresent reports whether err indicates the planned target
// already holds identical content.
func IsContentPresent(err error) bool {
	return errors.Is(err, ErrContentPresent)
}
