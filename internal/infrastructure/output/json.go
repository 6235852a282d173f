package output

import (
	"encoding/json"
	"io"

	"github.com/entrig/entrig/internal/domain/entities"
)

// JSONFormatter formats setup reports as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// Format writes the report as JSON followed by a newline.
func (f *JSONFormatter) Format(report *entities.SetupReport) error {
	encoder := json.NewEncoder(f.writer)
	if f.indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}
