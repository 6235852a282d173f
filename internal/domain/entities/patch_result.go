package entities

import (
	"time"

	"github.com/entrig/entrig/internal/domain/values"
)

// PatchResult is the outcome of one patch attempt. It is only reported,
// never persisted.
type PatchResult struct {
	Target     values.Target      `json:"target" yaml:"target"`
	Path       string             `json:"path" yaml:"path"`
	Status     values.PatchStatus `json:"status" yaml:"status"`
	BackupPath string             `json:"backup_path,omitempty" yaml:"backup_path,omitempty"`
	Message    string             `json:"message,omitempty" yaml:"message,omitempty"`
}

// NewPatchResult creates a result without a backup.
func NewPatchResult(target values.Target, path string, status values.PatchStatus, message string) PatchResult {
	return PatchResult{
		Target:  target,
		Path:    path,
		Status:  status,
		Message: message,
	}
}

// WithBackup records the backup written before mutation.
func (r PatchResult) WithBackup(path string) PatchResult {
	r.BackupPath = path
	return r
}

// ReportSummary counts results per status.
type ReportSummary struct {
	Total            int `json:"total" yaml:"total"`
	AlreadySatisfied int `json:"already_satisfied" yaml:"already_satisfied"`
	Created          int `json:"created" yaml:"created"`
	Patched          int `json:"patched" yaml:"patched"`
	Skipped          int `json:"skipped" yaml:"skipped"`
	Failed           int `json:"failed" yaml:"failed"`
}

// SetupReport collects everything a single setup run produced.
type SetupReport struct {
	StartTime   time.Time     `json:"start_time" yaml:"start_time"`
	ToolVersion string        `json:"tool_version,omitempty" yaml:"tool_version,omitempty"`
	Layout      ProjectLayout `json:"layout" yaml:"layout"`
	Results     []PatchResult `json:"results" yaml:"results"`
	Summary     ReportSummary `json:"summary" yaml:"summary"`
	Duration    time.Duration `json:"duration" yaml:"duration"`
	RunID       values.RunID  `json:"run_id" yaml:"run_id"`
	DryRun      bool          `json:"dry_run" yaml:"dry_run"`
}

// NewSetupReport starts a report for the given layout.
func NewSetupReport(layout ProjectLayout, toolVersion string) *SetupReport {
	return &SetupReport{
		RunID:       values.NewRunID(),
		ToolVersion: toolVersion,
		Layout:      layout,
		StartTime:   time.Now(),
		Results:     []PatchResult{},
	}
}

// Add appends a result and updates the summary.
func (r *SetupReport) Add(result PatchResult) {
	r.Results = append(r.Results, result)
	r.Summary.Total++
	switch result.Status {
	case values.StatusAlreadySatisfied:
		r.Summary.AlreadySatisfied++
	case values.StatusCreated:
		r.Summary.Created++
	case values.StatusPatched:
		r.Summary.Patched++
	case values.StatusSkippedMissingTarget:
		r.Summary.Skipped++
	case values.StatusFailedParse:
		r.Summary.Failed++
	}
}

// Complete stamps the run duration.
func (r *SetupReport) Complete() {
	r.Duration = time.Since(r.StartTime)
}

// HasProblems reports whether any target was skipped or failed.
func (r *SetupReport) HasProblems() bool {
	return r.Summary.Skipped > 0 || r.Summary.Failed > 0
}
