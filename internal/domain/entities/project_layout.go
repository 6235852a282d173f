// Package entities contains the domain entities of the setup tool.
package entities

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// NameSource records where the application name was resolved from.
type NameSource string

const (
	// NameFromFlag means the name was given explicitly on the command line
	NameFromFlag NameSource = "flag"
	// NameFromExpoName means app.json expo.name
	NameFromExpoName NameSource = "app.json expo.name"
	// NameFromRootName means app.json name
	NameFromRootName NameSource = "app.json name"
	// NameFromDirectoryScan means the first eligible directory under the native dir
	NameFromDirectoryScan NameSource = "directory scan"
	// NameFromPrompt means the developer picked the directory interactively
	NameFromPrompt NameSource = "prompt"
)

// ProjectLayout is the resolved shape of a native iOS project.
// It is resolved once per run and never mutated afterwards.
type ProjectLayout struct {
	ProjectRoot string     `json:"project_root" yaml:"project_root"`
	NativeDir   string     `json:"native_dir" yaml:"native_dir"`
	AppName     string     `json:"app_name" yaml:"app_name"`
	NameSource  NameSource `json:"name_source" yaml:"name_source"`
	AppVersion  string     `json:"app_version,omitempty" yaml:"app_version,omitempty"`
}

// NewProjectLayout creates a validated layout.
func NewProjectLayout(projectRoot, nativeDir, appName string, source NameSource) (ProjectLayout, error) {
	layout := ProjectLayout{
		ProjectRoot: projectRoot,
		NativeDir:   nativeDir,
		AppName:     appName,
		NameSource:  source,
	}
	if err := layout.Validate(); err != nil {
		return ProjectLayout{}, err
	}
	return layout, nil
}

// Validate checks that the layout can address per-app files.
func (l ProjectLayout) Validate() error {
	if l.NativeDir == "" {
		return fmt.Errorf("native project directory is required")
	}
	if strings.TrimSpace(l.AppName) == "" {
		return fmt.Errorf("application name is required")
	}
	if strings.ContainsAny(l.AppName, `/\`) {
		return fmt.Errorf("application name %q must not contain path separators", l.AppName)
	}
	return nil
}

// AppDir returns the per-app directory inside the native project.
func (l ProjectLayout) AppDir() string {
	return filepath.Join(l.NativeDir, l.AppName)
}

// EntitlementsCandidates returns the entitlements paths to probe, in order:
// the exact app name, then the app name with all whitespace removed.
// The first candidate is the creation target when none exists.
func (l ProjectLayout) EntitlementsCandidates() []string {
	exact := filepath.Join(l.AppDir(), l.AppName+".entitlements")
	compact := filepath.Join(l.AppDir(), stripWhitespace(l.AppName)+".entitlements")
	if compact == exact {
		return []string{exact}
	}
	return []string{exact, compact}
}

// InfoPlistPath returns the application metadata document path.
func (l ProjectLayout) InfoPlistPath() string {
	return filepath.Join(l.AppDir(), "Info.plist")
}

// Rel returns path relative to the project root for display, or path
// unchanged when it cannot be made relative.
func (l ProjectLayout) Rel(path string) string {
	if l.ProjectRoot == "" {
		return path
	}
	rel, err := filepath.Rel(l.ProjectRoot, path)
	if err != nil {
		return path
	}
	return rel
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
