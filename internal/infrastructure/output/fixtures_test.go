package output

import (
	"path/filepath"
	"time"

	"github.com/entrig/entrig/internal/domain/entities"
	"github.com/entrig/entrig/internal/domain/values"
)

func sampleLayout() entities.ProjectLayout {
	root := filepath.Join(string(filepath.Separator), "work", "demo")
	return entities.ProjectLayout{
		ProjectRoot: root,
		NativeDir:   filepath.Join(root, "ios"),
		AppName:     "Demo",
		NameSource:  entities.NameFromExpoName,
		AppVersion:  "1.0.0",
	}
}

// sampleReport has one result per status of interest.
func sampleReport(statuses ...values.PatchStatus) *entities.SetupReport {
	layout := sampleLayout()
	report := entities.NewSetupReport(layout, "1.2.3")

	targets := []values.Target{values.TargetEntitlements, values.TargetBackgroundModes}
	paths := []string{layout.EntitlementsCandidates()[0], layout.InfoPlistPath()}

	for i, status := range statuses {
		target, path := targets[i%2], paths[i%2]
		result := entities.NewPatchResult(target, path, status, string(status)+" message")
		if status == values.StatusPatched {
			result = result.WithBackup(entities.BackupPathFor(path))
		}
		report.Add(result)
	}

	report.Duration = 15 * time.Millisecond
	return report
}
