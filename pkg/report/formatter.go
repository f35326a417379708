package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Formatter renders run summaries.
type Formatter interface {
	// FormatSummary writes a rendered summary to w.
	FormatSummary(w io.Writer, s Summary) error
}

// New creates a formatter based on configuration.
//
// Parameters:
//   - cfg: Formatter configuration
//
// Returns a configured Formatter.
func New(cfg Config) Formatter {
	// Set defaults.
	if cfg.Format == "" {
		cfg.Format = FormatTable
	}

	switch cfg.Format {
	case FormatJSON:
		return &jsonFormatter{config: cfg}
	case FormatSimple:
		return &simpleFormatter{config: cfg}
	case FormatTable:
		fallthrough
	default:
		return &tableFormatter{config: cfg}
	}
}

// writeHeader writes a section header.
func writeHeader(w io.Writer, title string, compact bool) error {
	if compact {
		_, err := fmt.Fprintf(w, "%s\n", title)
		return err
	}

	_, err := fmt.Fprintf(w, "\n%s\n%s\n\n", title, strings.Repeat("=", len(title)))
	return err
}

// terminalWidth returns the width of w when it is a terminal, or fallback.
func terminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}

	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}

	return width
}

// truncateLeft shortens a path from the left, keeping the informative tail.
func truncateLeft(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
