package organizer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// moveFile relocates src to dst.
//
// Same-volume moves are a single atomic rename. When rename fails with a
// link error (the cross-volume case), the file is copied to a temporary
// name beside dst, synced, renamed into place, and only then is src
// removed. A failure at any point before the final removal leaves src
// intact; a partially written temporary is cleaned up.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	if _, statErr := os.Lstat(src); statErr != nil {
		// The source is gone; nothing a copy fallback could save.
		return fmt.Errorf("%w %s: %v", ErrRename, src, err)
	}

	// Rename refused but the source is still there, which is what a
	// volume boundary looks like. EXDEV is not portably detectable, so
	// the fallback is attempted for any surviving source.
	return copyThenRemove(src, dst)
}

// copyThenRemove is the cross-volume fallback for moveFile.
func copyThenRemove(src, dst string) (err error) {
	in, err := os.Open(src) // #nosec G304: paths come from the scanned tree
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrCopy, src, err)
	}
	defer in.Close() // nolint:errcheck // Read-only handle.

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrCopy, src, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".partial-*")
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrCopy, src, err)
	}
	tmpPath := tmp.Name()

	// Any failure from here on must not leave the temporary behind.
	defer func() {
		if err != nil {
			_ = tmp.Close()       // nolint:errcheck
			_ = os.Remove(tmpPath) // nolint:errcheck
		}
	}()

	if _, err = io.Copy(tmp, in); err != nil {
		return fmt.Errorf("%w %s: %v", ErrCopy, src, err)
	}

	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w %s: %v", ErrCopy, src, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w %s: %v", ErrCopy, src, err)
	}

	// Preserve the modification time: the destination date directory was
	// derived from it, and a re-run must plan the same directory.
	if err = os.Chtimes(tmpPath, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("%w %s: %v", ErrCopy, src, err)
	}

	if err = os.Rename(tmpPath, dst); err != nil {
		return fmt.Errorf("%w %s: %v", ErrCopy, src, err)
	}

	// The copy is confirmed in place; removing the source is now safe.
	if err = os.Remove(src); err != nil {
		return fmt.Errorf("%w %s: %v", ErrRemoveSource, src, err)
	}

	return nil
}
