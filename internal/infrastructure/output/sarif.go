// Package output provides formatters for setup reports.
package output

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/entrig/entrig/internal/domain/entities"
	"github.com/entrig/entrig/internal/domain/values"
)

// SARIFFormatter formats setup reports as SARIF 2.1.0 JSON. Each target
// becomes a rule and each patch result a result located at its document.
type SARIFFormatter struct {
	writer io.Writer
}

// NewSARIFFormatter creates a new SARIF formatter.
func NewSARIFFormatter(writer io.Writer) *SARIFFormatter {
	return &SARIFFormatter{writer: writer}
}

// Format writes the report as SARIF 2.1.0 JSON.
func (f *SARIFFormatter) Format(report *entities.SetupReport) error {
	sarifReport := sarif.NewReport()

	run := sarif.NewRunWithInformationURI("Entrig", "https://entrig.dev")
	if report.ToolVersion != "" {
		run.Tool.Driver.Version = &report.ToolVersion
	}
	run.Tool.Driver.Organization = ptrString("Entrig")

	for _, target := range []values.Target{values.TargetEntitlements, values.TargetBackgroundModes} {
		run.Tool.Driver.AddRule(sarifRule(target))
	}

	for _, result := range report.Results {
		run.AddResult(sarifResult(report, result))
	}

	props := sarif.NewPropertyBag()
	props.Add("runId", report.RunID.String())
	props.Add("appName", report.Layout.AppName)
	props.Add("dryRun", report.DryRun)
	props.Add("summary", report.Summary)
	run.WithProperties(props)

	sarifReport.AddRun(run)

	if err := sarifReport.Write(f.writer); err != nil {
		return fmt.Errorf("failed to write SARIF output: %w", err)
	}

	_, err := f.writer.Write([]byte("\n"))
	return err
}

func sarifRule(target values.Target) *sarif.ReportingDescriptor {
	title := target.Title()
	desc := fmt.Sprintf("The native iOS project declares %s.", target.Declaration())

	rule := sarif.NewReportingDescriptor().WithID(string(target))
	rule.WithName(target.Declaration())
	rule.WithShortDescription(&sarif.MultiformatMessageString{Text: &title})
	rule.WithFullDescription(&sarif.MultiformatMessageString{Text: &desc})
	rule.WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: "error"})
	return rule
}

func sarifResult(report *entities.SetupReport, pr entities.PatchResult) *sarif.Result {
	result := sarif.NewRuleResult(string(pr.Target))
	result.Level = sarifLevel(pr.Status)
	result.Kind = sarifKind(pr.Status)

	msg := pr.Message
	if msg == "" {
		msg = fmt.Sprintf("%s: %s", pr.Target, pr.Status)
	}
	result.Message = sarif.NewTextMessage(msg)

	uri := filepath.ToSlash(report.Layout.Rel(pr.Path))
	pLoc := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithURI(uri))
	result.Locations = []*sarif.Location{sarif.NewLocation().WithPhysicalLocation(pLoc)}

	props := sarif.NewPropertyBag()
	props.Add("status", string(pr.Status))
	if pr.BackupPath != "" {
		props.Add("backup", filepath.ToSlash(report.Layout.Rel(pr.BackupPath)))
	}
	result.WithProperties(props)

	return result
}

func sarifLevel(status values.PatchStatus) string {
	switch {
	case status.IsFailure():
		return "error"
	case status.IsSkipped():
		return "warning"
	default:
		return "note"
	}
}

func sarifKind(status values.PatchStatus) string {
	if status.IsSuccess() {
		return "pass"
	}
	return "fail"
}

func ptrString(s string) *string {
	return &s
}
