package classify

import "fmt"

// TableError reports an inconsistency in the extension table.
type TableError struct {
	// Extension is the offending table key, if the problem is per-entry.
	Extension string

	// Category is the offending category name, if the problem is per-category.
	Category string

	// Reason describes the inconsistency.
	Reason string
}

// Error implements the error interface.
func (e *TableError) Error() string {
	if e.Extension != "" {
		return fmt.Sprintf("extension table entry %q: %s", e.Extension, e.Reason)
	}
	return fmt.Sprintf("category %s: %s", e.Category, e.Reason)
}
