// Package scanner discovers files eligible for organization.
//
// It walks a source tree and produces one FileEntry per regular file,
// skipping the organizer's own output directories so an already-organized
// tree scans as empty. Entries are transient: they are rebuilt on every
// scan and never persisted.
//
// Example usage:
//
//	s := scanner.New(scanner.Config{Root: "/downloads"}, logger.Default())
//	entries, err := s.Scan()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range entries {
//	    fmt.Printf("%s (%d bytes)\n", e.Path, e.Size)
//	}
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Logger defines the logging interface used by the scanner package.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// FileEntry identifies one filesystem object under consideration.
type FileEntry struct {
	// Path is the absolute path to the file.
	Path string

	// Name is the file's base name.
	Name string

	// Extension is the lower-cased extension without the dot.
	Extension string

	// Size is the file size in bytes.
	Size int64

	// ModTime is the last modification time.
	ModTime time.Time
}

// Scanner discovers files under a source root.
type Scanner interface {
	// Scan walks the source tree and returns an entry per regular file.
	//
	// Returns:
	//   - Entries for every regular file outside the skip set
	//   - Error if the root itself cannot be read
	//
	// Unreadable subdirectories are logged and skipped, not fatal.
	// Directories, symlinks, and anything under a skip directory are
	// excluded.
	Scan() ([]FileEntry, error)

	// EntryFor builds a FileEntry for a single path.
	//
	// Returns:
	//   - The entry and true for a regular file
	//   - Zero entry and false for directories, symlinks, vanished
	//     paths, and paths under a skip directory
	EntryFor(path string) (FileEntry, bool)
}

// Config contains scanner configuration.
type Config struct {
	// Root is the source directory to walk.
	Root string

	// SkipDirs are absolute directory paths excluded from the walk,
	// typically the organizer's own output directories.
	SkipDirs []string
}

// scanner implements the Scanner interface.
type scanner struct {
	config Config
	logger Logger
}

// New creates a new Scanner instance.
//
// Parameters:
//   - cfg: Scanner configuration
//   - log: Logger instance for diagnostic messages
//
// Returns a configured Scanner.
func New(cfg Config, log Logger) Scanner {
	return &scanner{
		config: cfg,
		logger: log,
	}
}

// Scan implements Scanner.Scan.
func (s *scanner) Scan() ([]FileEntry, error) {
	root := s.config.Root

	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("failed to stat source root %s: %w", root, err)
	}

	var entries []FileEntry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("error walking path",
				"path", path,
				"error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil // Skip but continue walking.
		}

		if d.IsDir() {
			if path != root && s.isSkipped(path) {
				s.logger.Debug("skipping output directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}

		entry, ok := s.entryFromDirEntry(path, d)
		if !ok {
			return nil
		}

		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk source root %s: %w", root, err)
	}

	s.logger.Info("scan complete",
		"root", root,
		"files_found", len(entries))

	return entries, nil
}

// EntryFor implements Scanner.EntryFor.
func (s *scanner) EntryFor(path string) (FileEntry, bool) {
	if s.isSkipped(path) {
		return FileEntry{}, false
	}

	info, err := os.Lstat(path)
	if err != nil {
		// Vanished between event and processing; normal in watch mode.
		s.logger.Debug("path no longer exists", "path", path)
		return FileEntry{}, false
	}

	if !info.Mode().IsRegular() {
		return FileEntry{}, false
	}

	return buildEntry(path, info), true
}

// entryFromDirEntry converts a walk entry into a FileEntry.
func (s *scanner) entryFromDirEntry(path string, d fs.DirEntry) (FileEntry, bool) {
	if !d.Type().IsRegular() {
		// Symlinks and other special files are outside the category model.
		s.logger.Debug("skipping non-regular file", "path", path)
		return FileEntry{}, false
	}

	info, err := d.Info()
	if err != nil {
		s.logger.Warn("failed to get file info",
			"path", path,
			"error", err)
		return FileEntry{}, false
	}

	return buildEntry(path, info), true
}

// isSkipped reports whether path lies inside a configured skip directory.
func (s *scanner) isSkipped(path string) bool {
	for _, dir := range s.config.SkipDirs {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// buildEntry constructs a FileEntry from a path and its file info.
func buildEntry(path string, info fs.FileInfo) FileEntry {
	name := info.Name()
	return FileEntry{
		Path:      path,
		Name:      name,
		Extension: strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")),
		Size:      info.Size(),
		ModTime:   info.ModTime(),
	}
}
