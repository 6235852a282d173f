package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/entrig/entrig/internal/domain/entities"
	"github.com/entrig/entrig/internal/domain/values"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// TableFormatter formats setup reports as human-readable progress output.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the report.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) Format(report *entities.SetupReport) error {
	title := "Entrig iOS Setup"
	if report.DryRun {
		title += " (dry run)"
	}
	fmt.Fprintln(f.writer, f.colorize(title, colorBold))
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 60), colorGray))

	f.formatLayout(report.Layout)
	fmt.Fprintln(f.writer)

	for _, result := range report.Results {
		f.formatResult(report.Layout, result)
	}

	if createdEntitlements(report) {
		f.formatXcodeReminder(report.Layout.AppName)
	}

	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 60), colorGray))
	f.formatSummary(report)

	return nil
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatLayout(layout entities.ProjectLayout) {
	fmt.Fprintf(f.writer, "%s Found iOS project: %s\n",
		f.colorize("✓", colorGreen), f.colorize(layout.AppName, colorBold))
	fmt.Fprintf(f.writer, "  Name from: %s\n", layout.NameSource)
	fmt.Fprintf(f.writer, "  Native dir: %s\n", layout.Rel(layout.NativeDir))
	if layout.AppVersion != "" {
		fmt.Fprintf(f.writer, "  Version: %s\n", layout.AppVersion)
	}
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatResult(layout entities.ProjectLayout, result entities.PatchResult) {
	symbol, color := statusInfo(result.Status)

	fmt.Fprintf(f.writer, "%s %s: %s\n",
		f.colorize(symbol, color),
		f.colorize(result.Target.Title(), colorBold),
		layout.Rel(result.Path))
	fmt.Fprintf(f.writer, "  Status: %s\n", f.colorize(strings.ToUpper(string(result.Status)), color))
	if result.Message != "" {
		fmt.Fprintf(f.writer, "  %s\n", result.Message)
	}
	if result.BackupPath != "" {
		fmt.Fprintf(f.writer, "  Backup: %s\n", f.colorize(layout.Rel(result.BackupPath), colorCyan))
	}
	fmt.Fprintln(f.writer)
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatXcodeReminder(appName string) {
	fmt.Fprintf(f.writer, "%s You may need to add the entitlements file to your Xcode project:\n",
		f.colorize("⚠ Note:", colorYellow))
	fmt.Fprintf(f.writer, "   1. Open %s.xcworkspace in Xcode\n", appName)
	fmt.Fprintln(f.writer, "   2. Select your target > Signing & Capabilities")
	fmt.Fprintln(f.writer, "   3. Click + Capability > Push Notifications")
	fmt.Fprintln(f.writer)
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatSummary(report *entities.SetupReport) {
	s := report.Summary
	fmt.Fprintf(f.writer, "%d targets: %d created, %d patched, %d already configured, %d skipped, %d failed (%s)\n",
		s.Total, s.Created, s.Patched, s.AlreadySatisfied, s.Skipped, s.Failed,
		report.Duration.Round(time.Millisecond))

	switch {
	case report.DryRun:
		fmt.Fprintln(f.writer, "Dry run complete. No files were written.")
	case report.HasProblems():
		fmt.Fprintln(f.writer, f.colorize("Setup finished with problems. Review the messages above.", colorYellow))
	default:
		fmt.Fprintln(f.writer, f.colorize("Setup complete! Rebuild your iOS app to apply changes.", colorGreen))
	}
}

func statusInfo(status values.PatchStatus) (string, string) {
	switch status {
	case values.StatusCreated, values.StatusPatched:
		return "✓", colorGreen
	case values.StatusAlreadySatisfied:
		return "✓", colorGray
	case values.StatusSkippedMissingTarget:
		return "⊘", colorYellow
	case values.StatusFailedParse:
		return "✗", colorRed
	default:
		return "?", colorGray
	}
}

func createdEntitlements(report *entities.SetupReport) bool {
	for _, result := range report.Results {
		if result.Target == values.TargetEntitlements && result.Status == values.StatusCreated {
			return true
		}
	}
	return false
}
