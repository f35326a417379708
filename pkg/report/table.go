package report

import (
	"fmt"
	"io"
)

// tableFormatter formats summaries as aligned text tables.
type tableFormatter struct {
	config Config
}

// FormatSummary implements Formatter.FormatSummary.
func (f *tableFormatter) FormatSummary(w io.Writer, s Summary) error {
	if err := writeHeader(w, "Organization Summary", f.config.Compact); err != nil {
		return err
	}

	rows := [][]string{
		{"Processed", fmt.Sprintf("%d", s.Total())},
		{"Moved", fmt.Sprintf("%d", s.Moved)},
		{"Duplicates", fmt.Sprintf("%d", s.Duplicates)},
		{"Already organized", fmt.Sprintf("%d", s.AlreadyOrganized)},
		{"Skipped", fmt.Sprintf("%d", s.Skipped)},
		{"Failed", fmt.Sprintf("%d", s.Failed)},
		{"Duration", s.Duration.Round(durationResolution).String()},
	}

	if err := f.writeTable(w, []string{"Metric", "Value"}, rows); err != nil {
		return err
	}

	if len(s.DuplicateFiles) > 0 {
		if err := writeHeader(w, "Duplicates", f.config.Compact); err != nil {
			return err
		}

		width := terminalWidth(w, defaultWidth)
		pathWidth := (width - 3) / 2

		dupRows := make([][]string, len(s.DuplicateFiles))
		for i, d := range s.DuplicateFiles {
			dupRows[i] = []string{
				truncateLeft(d.Source, pathWidth),
				truncateLeft(d.Canonical, pathWidth),
			}
		}

		if err := f.writeTable(w, []string{"Source", "Canonical"}, dupRows); err != nil {
			return err
		}
	}

	if len(s.FailedFiles) > 0 {
		if err := writeHeader(w, "Failures", f.config.Compact); err != nil {
			return err
		}

		width := terminalWidth(w, defaultWidth)
		pathWidth := (width - 3) / 2

		failRows := make([][]string, len(s.FailedFiles))
		for i, fail := range s.FailedFiles {
			failRows[i] = []string{
				truncateLeft(fail.Source, pathWidth),
				fail.Cause,
			}
		}

		if err := f.writeTable(w, []string{"Source", "Cause"}, failRows); err != nil {
			return err
		}
	}

	return nil
}

const defaultWidth = 120

// writeTable writes an aligned two-plus-column table.
func (f *tableFormatter) writeTable(w io.Writer, header []string, rows [][]string) error {
	// Compute column widths.
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) error {
		for i, cell := range cells {
			if i > 0 {
				if _, err := fmt.Fprint(w, "  "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%-*s", widths[i], cell); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(w)
		return err
	}

	if !f.config.Compact {
		if err := writeRow(header); err != nil {
			return err
		}

		separators := make([]string, len(header))
		for i := range separators {
			sep := make([]byte, widths[i])
			for j := range sep {
				sep[j] = '-'
			}
			separators[i] = string(sep)
		}
		if err := writeRow(separators); err != nil {
			return err
		}
	}

	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}

	return nil
}
