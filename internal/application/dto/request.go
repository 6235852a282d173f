// Package dto contains data transfer objects for application layer use cases.
package dto

// SetupIOSRequest encapsulates all inputs needed to run `setup ios`.
type SetupIOSRequest struct {
	// ProjectRoot is the directory holding app.json and the native project.
	// It is resolved once by the caller and never read from the process.
	ProjectRoot string

	// AppName overrides app name resolution when non-empty
	AppName string

	Options  SetupOptions
	Metadata RequestMetadata
}

// SetupOptions controls how the setup run behaves.
type SetupOptions struct {
	// DryRun decides every patch without writing anything
	DryRun bool

	// Interactive allows prompting when the app directory is ambiguous
	Interactive bool
}

// RequestMetadata contains metadata for request tracking.
type RequestMetadata struct {
	// ToolVersion is stamped into the report
	ToolVersion string
}

// LayoutRequest encapsulates inputs for project layout resolution.
type LayoutRequest struct {
	ProjectRoot string
	AppName     string
	Interactive bool
}
