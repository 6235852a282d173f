package values

import (
	"fmt"
)

// PatchStatus represents the outcome of a single patch attempt.
type PatchStatus string

const (
	// StatusAlreadySatisfied indicates the document already declares the capability
	StatusAlreadySatisfied PatchStatus = "already-satisfied"
	// StatusCreated indicates a new document was written from scratch
	StatusCreated PatchStatus = "created"
	// StatusPatched indicates an existing document was backed up and mutated
	StatusPatched PatchStatus = "patched"
	// StatusSkippedMissingTarget indicates the target (or its directory) does not exist
	StatusSkippedMissingTarget PatchStatus = "skipped-missing-target"
	// StatusFailedParse indicates a structural landmark could not be located
	StatusFailedParse PatchStatus = "failed-parse"
)

// AllPatchStatuses lists every status in report order.
func AllPatchStatuses() []PatchStatus {
	return []PatchStatus{
		StatusAlreadySatisfied,
		StatusCreated,
		StatusPatched,
		StatusSkippedMissingTarget,
		StatusFailedParse,
	}
}

// IsFailure returns true if the patch could not be applied
func (s PatchStatus) IsFailure() bool {
	return s == StatusFailedParse
}

// IsSkipped returns true if the patch was not attempted
func (s PatchStatus) IsSkipped() bool {
	return s == StatusSkippedMissingTarget
}

// WroteDocument returns true if the status implies a write to the target.
func (s PatchStatus) WroteDocument() bool {
	return s == StatusCreated || s == StatusPatched
}

// IsSuccess returns true if the document satisfies the requirement after the run
func (s PatchStatus) IsSuccess() bool {
	return s == StatusAlreadySatisfied || s.WroteDocument()
}

// Validate returns an error if the status value is invalid
func (s PatchStatus) Validate() error {
	switch s {
	case StatusAlreadySatisfied, StatusCreated, StatusPatched,
		StatusSkippedMissingTarget, StatusFailedParse:
		return nil
	default:
		return fmt.Errorf("invalid patch status: %s", s)
	}
}

// String returns the status as a string.
func (s PatchStatus) String() string {
	return string(s)
}
