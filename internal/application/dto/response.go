package dto

import (
	"time"

	"github.com/entrig/entrig/internal/domain/entities"
)

// SetupIOSResponse contains the result of a setup run.
type SetupIOSResponse struct {
	// Report contains one result per patched target
	Report *entities.SetupReport

	// Metadata contains response metadata
	Metadata ResponseMetadata
}

// ResponseMetadata contains metadata about the response.
type ResponseMetadata struct {
	// ProcessedAt is when the request was processed
	ProcessedAt time.Time

	// Duration is how long the request took
	Duration time.Duration
}
