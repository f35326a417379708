// Package dupindex tracks which destination path canonically holds each
// content digest.
//
// The index is the only mutable state shared between workers. Register is an
// atomic check-and-insert: when several files with identical content are
// processed concurrently, exactly one caller wins the canonical slot and
// every other caller learns it lost. Entries are never removed; the index
// lives for one run and is rebuilt from scratch by rehashing on the next.
//
// Example usage:
//
//	idx := dupindex.New()
//	if idx.Register(digest, "/sorted/Images/2026-08-24/photo.jpg") {
//	    // First sighting: this path is now canonical for the digest.
//	} else {
//	    canonical, _ := idx.Lookup(digest)
//	    // Duplicate of canonical.
//	}
package dupindex

import (
	"sync"

	"github.com/subhdotsol/FileOrganizer/pkg/hasher"
)

// Index maps content digests to canonical destination paths.
type Index interface {
	// Lookup returns the canonical path registered for a digest.
	//
	// Returns:
	//   - Canonical path and true if the digest is known
	//   - Empty string and false otherwise
	Lookup(digest hasher.Digest) (string, bool)

	// Register records path as the canonical location for digest, unless
	// a canonical entry already exists.
	//
	// Returns true if this call established the canonical entry, false if
	// an entry already existed. The check and insert are atomic with
	// respect to concurrent callers: for any digest, exactly one Register
	// call ever returns true.
	Register(digest hasher.Digest, path string) bool

	// Len returns the number of canonical entries.
	Len() int
}

// index implements Index with a mutex-guarded map.
//
// A single mutex is sufficient: operations are O(1) map accesses and the
// worker pool is small, so contention never shows up next to the file I/O
// surrounding each call.
type index struct {
	mu      sync.Mutex
	entries map[hasher.Digest]string
}

// New creates an empty in-memory index.
func New() Index {
	return &index{
		entries: make(map[hasher.Digest]string),
	}
}

// Lookup implements Index.Lookup.
func (i *index) Lookup(digest hasher.Digest) (string, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()

	path, ok := i.entries[digest]
	return path, ok
}

// Register implements Index.Register.
func (i *index) Register(digest hasher.Digest, path string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, exists := i.entries[digest]; exists {
		return false
	}

	i.entries[digest] = path
	return true
}

// Len implements Index.Len.
func (i *index) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()

	return len(i.entries)
}
