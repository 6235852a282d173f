// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"io"

	"github.com/entrig/entrig/internal/application/dto"
	"github.com/entrig/entrig/internal/domain/entities"
)

// DocumentStore reads and writes configuration documents.
// Implementations must write documents verbatim.
type DocumentStore interface {
	// FileExists reports whether a regular file exists at path.
	FileExists(path string) (bool, error)

	// DirExists reports whether a directory exists at path.
	DirExists(path string) (bool, error)

	// Read returns the raw bytes of the document at path.
	Read(path string) ([]byte, error)

	// Write replaces the document at path with data.
	Write(path string, data []byte) error

	// Backup copies src to dst byte for byte, overwriting dst.
	Backup(src, dst string) error
}

// LayoutResolver locates the native project and resolves the app name.
type LayoutResolver interface {
	Resolve(ctx context.Context, req dto.LayoutRequest) (entities.ProjectLayout, error)
}

// AppPicker lets the developer choose between candidate app directories.
type AppPicker interface {
	// IsInteractive reports whether prompting is possible.
	IsInteractive() bool

	// PickApp returns one of candidates.
	PickApp(candidates []string) (string, error)
}

// ReportFormatter writes a setup report in one output format.
type ReportFormatter interface {
	Format(report *entities.SetupReport) error
}

// FormatterOptions configures formatter creation.
type FormatterOptions struct {
	Indent bool
	Color  bool
}

// ReportFormatterFactory creates formatters by name.
type ReportFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (ReportFormatter, error)
	SupportedFormats() []string
}

// DocumentStoreFactory returns the store a run writes through.
type DocumentStoreFactory interface {
	// NewStore returns a store that records writes without performing
	// them when dryRun is set.
	NewStore(dryRun bool) DocumentStore
}
