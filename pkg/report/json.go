package report

import (
	"encoding/json"
	"io"
)

// jsonFormatter formats summaries as JSON.
type jsonFormatter struct {
	config Config
}

// FormatSummary implements Formatter.FormatSummary.
func (f *jsonFormatter) FormatSummary(w io.Writer, s Summary) error {
	encoder := json.NewEncoder(w)
	if !f.config.Compact {
		encoder.SetIndent("", "  ")
	}

	return encoder.Encode(s)
}
