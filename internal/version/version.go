// Package version reports which entrig build is running.
package version

import (
	"fmt"
	"runtime"
)

// Stamped at release time with -ldflags "-X".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary. Reports carry Version only.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get collects build information for the current binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (i Info) String() string {
	return i.Version
}

// Full is the line printed by `entrig version`, e.g.
// "1.4.0 (commit 3f2a9c1, built 2026-03-02, go1.25.5 darwin/arm64)".
func (i Info) Full() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s %s)",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
