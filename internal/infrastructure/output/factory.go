package output

import (
	"fmt"
	"io"

	"github.com/entrig/entrig/internal/application/ports"
)

type formatterBuilder func(w io.Writer, opts ports.FormatterOptions) ports.ReportFormatter

// reportFormats lists every --format value in help-text order.
var reportFormats = []struct {
	name  string
	build formatterBuilder
}{
	{"table", func(w io.Writer, opts ports.FormatterOptions) ports.ReportFormatter {
		f := NewTableFormatter(w)
		f.EnableColor = opts.Color
		return f
	}},
	{"json", func(w io.Writer, opts ports.FormatterOptions) ports.ReportFormatter {
		return NewJSONFormatter(w, opts.Indent)
	}},
	{"yaml", func(w io.Writer, _ ports.FormatterOptions) ports.ReportFormatter {
		return NewYAMLFormatter(w)
	}},
	{"junit", func(w io.Writer, _ ports.FormatterOptions) ports.ReportFormatter {
		return NewJUnitFormatter(w)
	}},
	{"sarif", func(w io.Writer, _ ports.FormatterOptions) ports.ReportFormatter {
		return NewSARIFFormatter(w)
	}},
}

// FormatterFactory implements ports.ReportFormatterFactory.
type FormatterFactory struct{}

// NewFormatterFactory creates a new formatter factory.
func NewFormatterFactory() *FormatterFactory {
	return &FormatterFactory{}
}

// Create returns the report writer for format.
func (f *FormatterFactory) Create(
	format string,
	writer io.Writer,
	options ports.FormatterOptions,
) (ports.ReportFormatter, error) {
	for _, rf := range reportFormats {
		if rf.name == format {
			return rf.build(writer, options), nil
		}
	}
	return nil, fmt.Errorf("unknown format: %s (supported: %v)", format, f.SupportedFormats())
}

// SupportedFormats returns the accepted --format values.
func (f *FormatterFactory) SupportedFormats() []string {
	names := make([]string, 0, len(reportFormats))
	for _, rf := range reportFormats {
		names = append(names, rf.name)
	}
	return names
}
