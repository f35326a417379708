package organizer

import "errors"

// Common errors returned by the organizer.
var (
	// ErrUnknownPolicy is returned for an unrecognized duplicate policy.
	ErrUnknownPolicy = errors.New("unknown duplicate policy")

	// ErrModifiedDuringHash is returned when a file changed while its
	// digest was being computed. The digest is discarded.
	ErrModifiedDuringHash = errors.New("file modified while hashing")

	// ErrRename is returned when a same-volume rename fails.
	ErrRename = errors.New("failed to rename file")

	// ErrCopy is returned when the cross-volume copy fallback fails.
	// The source file is left intact.
	ErrCopy = errors.New("failed to copy file across volumes")

	// ErrRemoveSource is returned when the source cannot be removed
	// after a completed cross-volume copy.
	ErrRemoveSource = errors.New("failed to remove source after copy")

	// ErrRemoveDuplicate is returned when a duplicate cannot be deleted
	// under the delete policy.
	ErrRemoveDuplicate = errors.New("failed to remove duplicate file")
)
