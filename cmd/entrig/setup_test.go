package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/entrig/entrig/internal/application/errors"
	"github.com/entrig/entrig/internal/infrastructure/container"
)

const testInfoPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleName</key>
	<string>Demo</string>
</dict>
</plist>
`

func newCommandContext(t *testing.T) *CommandContext {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := container.New(container.Options{Logger: logger})
	require.NoError(t, err)
	return &CommandContext{Container: c, Logger: logger, Context: context.Background()}
}

// newExpoProject lays out an Expo prebuild project with one app directory.
func newExpoProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	appDir := filepath.Join(root, "ios", "Demo")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ios", "Pods"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "Info.plist"), []byte(testInfoPlist), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.json"), []byte(`{"expo":{"name":"Demo","version":"1.0.0"}}`), 0o644))
	return root
}

func TestValidatePlatform(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validatePlatform([]string{"ios"}))

	for _, args := range [][]string{nil, {"android"}, {"ios", "extra"}} {
		err := validatePlatform(args)
		var usageErr *apperrors.UsageError
		require.True(t, errors.As(err, &usageErr), "args %v", args)
		assert.Equal(t, setupUsage, usageErr.Usage)
	}
}

func TestRunSetupIOS_PatchesProject(t *testing.T) {
	root := newExpoProject(t)
	var stdout bytes.Buffer

	opts := SetupOptions{Format: "json"}
	require.NoError(t, runSetupIOS(newCommandContext(t), opts, root, &stdout))

	var report struct {
		Results []struct {
			Target string `json:"target"`
			Status string `json:"status"`
		} `json:"results"`
		Layout struct {
			AppName    string `json:"app_name"`
			AppVersion string `json:"app_version"`
		} `json:"layout"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.Equal(t, "Demo", report.Layout.AppName)
	assert.Equal(t, "1.0.0", report.Layout.AppVersion)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "created", report.Results[0].Status)
	assert.Equal(t, "patched", report.Results[1].Status)

	entitlements, err := os.ReadFile(filepath.Join(root, "ios", "Demo", "Demo.entitlements"))
	require.NoError(t, err)
	assert.Contains(t, string(entitlements), "<key>aps-environment</key>")

	backup, err := os.ReadFile(filepath.Join(root, "ios", "Demo", "Info.plist.backup"))
	require.NoError(t, err)
	assert.Equal(t, testInfoPlist, string(backup))

	// second run changes nothing
	stdout.Reset()
	require.NoError(t, runSetupIOS(newCommandContext(t), opts, root, &stdout))
	assert.Equal(t, 2, strings.Count(stdout.String(), `"already-satisfied"`))
}

func TestRunSetupIOS_DryRun(t *testing.T) {
	root := newExpoProject(t)
	var stdout bytes.Buffer

	opts := SetupOptions{Format: "table", DryRun: true, NoColor: true}
	require.NoError(t, runSetupIOS(newCommandContext(t), opts, root, &stdout))

	assert.Contains(t, stdout.String(), "dry run")
	assert.NoFileExists(t, filepath.Join(root, "ios", "Demo", "Demo.entitlements"))
	assert.NoFileExists(t, filepath.Join(root, "ios", "Demo", "Info.plist.backup"))

	plist, err := os.ReadFile(filepath.Join(root, "ios", "Demo", "Info.plist"))
	require.NoError(t, err)
	assert.Equal(t, testInfoPlist, string(plist))
}

func TestRunSetupIOS_OutputFile(t *testing.T) {
	root := newExpoProject(t)
	out := filepath.Join(t.TempDir(), "report.xml")
	var stdout bytes.Buffer

	opts := SetupOptions{Format: "junit", OutFile: out}
	require.NoError(t, runSetupIOS(newCommandContext(t), opts, root, &stdout))

	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<testsuites")
}

func TestRunSetupIOS_ParseFailureKeepsExitZero(t *testing.T) {
	root := newExpoProject(t)
	plist := filepath.Join(root, "ios", "Demo", "Info.plist")
	require.NoError(t, os.WriteFile(plist, []byte("garbage"), 0o644))
	var stdout bytes.Buffer

	opts := SetupOptions{Format: "table", NoColor: true}
	require.NoError(t, runSetupIOS(newCommandContext(t), opts, root, &stdout))

	assert.Contains(t, stdout.String(), "FAILED-PARSE")
	assert.NoFileExists(t, plist+".backup")
}

func TestRunSetupIOS_MissingNativeProject(t *testing.T) {
	var stdout bytes.Buffer

	err := runSetupIOS(newCommandContext(t), SetupOptions{Format: "table"}, t.TempDir(), &stdout)

	var notFound *apperrors.ProjectNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Empty(t, stdout.String())
}

func TestRootCommand_SetupWithoutPlatform(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"setup"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()

	var usageErr *apperrors.UsageError
	require.True(t, errors.As(err, &usageErr))
	assert.Contains(t, out.String(), "Usage: entrig setup ios")
}
