// Package classify maps file names to content categories.
//
// Classification is pure and total: every file name, including one with no
// extension at all, maps to exactly one Category. The mapping is defined by a
// fixed extension table and never changes at runtime.
//
// Example usage:
//
//	cat := classify.FromName("holiday.JPG")
//	fmt.Println(cat) // Images
package classify

import (
	"path/filepath"
	"strings"
)

// Category is a content-type bucket files are sorted into.
type Category int

// Supported categories. The String form of each value is also the
// destination directory name, so these names are load-bearing.
const (
	Images Category = iota
	Gifs
	Videos
	Audio
	Documents
	Archives
	Others
)

// String returns the category's destination directory name.
func (c Category) String() string {
	switch c {
	case Images:
		return "Images"
	case Gifs:
		return "Gifs"
	case Videos:
		return "Videos"
	case Audio:
		return "Audio"
	case Documents:
		return "Documents"
	case Archives:
		return "Archives"
	case Others:
		return "Others"
	default:
		return "Others"
	}
}

// All returns every category in declaration order.
//
// Useful for callers that need the full set of destination directory
// names, e.g. to skip the tool's own output during a scan.
func All() []Category {
	return []Category{Images, Gifs, Videos, Audio, Documents, Archives, Others}
}

// extensionTable maps lower-cased extensions (without the dot) to categories.
// Anything absent from the table is Others.
var extensionTable = map[string]Category{
	"jpg":  Images,
	"jpeg": Images,
	"png":  Images,
	"bmp":  Images,
	"tiff": Images,
	"gif":  Gifs,
	"mp4":  Videos,
	"mov":  Videos,
	"avi":  Videos,
	"mkv":  Videos,
	"mp3":  Audio,
	"wav":  Audio,
	"flac": Audio,
	"pdf":  Documents,
	"docx": Documents,
	"txt":  Documents,
	"zip":  Archives,
	"rar":  Archives,
	"7z":   Archives,
}

// FromName classifies a file by its name.
//
// Parameters:
//   - name: File name or path; only the extension matters.
//
// Returns the category for the name's extension, or Others when the
// extension is unknown or missing. Matching is case-insensitive.
func FromName(name string) Category {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return FromExtension(ext)
}

// FromExtension classifies a bare extension (no leading dot).
//
// Returns Others for unknown or empty extensions.
func FromExtension(ext string) Category {
	if cat, ok := extensionTable[strings.ToLower(ext)]; ok {
		return cat
	}
	return Others
}

// Validate checks the extension table against the category list.
//
// Returns an error if a table entry references a category outside the
// documented set, or if any category other than Others has no extension
// mapped to it. Called once during engine preflight.
func Validate() error {
	known := make(map[Category]bool, len(extensionTable))
	for ext, cat := range extensionTable {
		if cat < Images || cat > Others {
			return &TableError{Extension: ext, Reason: "unknown category"}
		}
		known[cat] = true
	}

	for _, cat := range All() {
		if cat == Others {
			continue // Default bucket, intentionally has no extensions.
		}
		if !known[cat] {
			return &TableError{Category: cat.String(), Reason: "no extensions mapped"}
		}
	}

	return nil
}
