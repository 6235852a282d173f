// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
)

// UsageError indicates the command was invoked with a wrong or missing argument.
type UsageError struct {
	Message string
	Usage   string
}

func (e *UsageError) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return fmt.Sprintf("%s\n\nUsage: %s", e.Message, e.Usage)
}

// NewUsageError creates a new usage error.
func NewUsageError(message, usage string) *UsageError {
	return &UsageError{
		Message: message,
		Usage:   usage,
	}
}

// ProjectNotFoundError indicates the native project directory is absent.
type ProjectNotFoundError struct {
	Dir string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("native project directory not found: %s", e.Dir)
}

// NewProjectNotFoundError creates a new project-not-found error.
func NewProjectNotFoundError(dir string) *ProjectNotFoundError {
	return &ProjectNotFoundError{Dir: dir}
}

// TargetMissingError indicates an expected per-app file or directory is absent.
// It is recoverable: only the affected patch is skipped.
type TargetMissingError struct {
	Path   string
	Target string
}

func (e *TargetMissingError) Error() string {
	return fmt.Sprintf("%s target missing: %s", e.Target, e.Path)
}

// NewTargetMissingError creates a new target-missing error.
func NewTargetMissingError(target, path string) *TargetMissingError {
	return &TargetMissingError{
		Target: target,
		Path:   path,
	}
}

// ParseError indicates a structural landmark was not found in an existing document.
type ParseError struct {
	Cause error
	Path  string
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not parse %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("could not parse %s", e.Path)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error.
func NewParseError(path string, cause error) *ParseError {
	return &ParseError{
		Path:  path,
		Cause: cause,
	}
}

// ConfigurationError indicates tool config or project setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}
