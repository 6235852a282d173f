package project

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrig/entrig/internal/application/dto"
	apperrors "github.com/entrig/entrig/internal/application/errors"
	"github.com/entrig/entrig/internal/domain/entities"
	"github.com/entrig/entrig/internal/infrastructure/system"
)

type stubPicker struct {
	interactive bool
	choice      string
	err         error
	offered     []string
}

func (p *stubPicker) IsInteractive() bool { return p.interactive }

func (p *stubPicker) PickApp(candidates []string) (string, error) {
	p.offered = candidates
	return p.choice, p.err
}

func newResolver(picker *stubPicker) *LayoutResolver {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if picker == nil {
		return NewLayoutResolver(system.NewConfigLoader(), nil, logger)
	}
	return NewLayoutResolver(system.NewConfigLoader(), picker, logger)
}

// newProject creates a project root with the given directories under ios/
// and an optional app.json.
func newProject(t *testing.T, appJSON string, iosDirs ...string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "ios"), 0o755))
	for _, d := range iosDirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "ios", d), 0o755))
	}
	if appJSON != "" {
		require.NoError(t, os.WriteFile(filepath.Join(root, "app.json"), []byte(appJSON), 0o600))
	}
	return root
}

func TestLayoutResolver_NamePrecedence(t *testing.T) {
	tests := []struct {
		name       string
		appJSON    string
		flag       string
		wantName   string
		wantSource entities.NameSource
	}{
		{
			name:       "flag wins",
			appJSON:    `{"expo":{"name":"ExpoName"},"name":"RootName"}`,
			flag:       "FlagName",
			wantName:   "FlagName",
			wantSource: entities.NameFromFlag,
		},
		{
			name:       "expo name",
			appJSON:    `{"expo":{"name":"ExpoName"},"name":"RootName"}`,
			wantName:   "ExpoName",
			wantSource: entities.NameFromExpoName,
		},
		{
			name:       "root name",
			appJSON:    `{"name":"RootName"}`,
			wantName:   "RootName",
			wantSource: entities.NameFromRootName,
		},
		{
			name:       "blank expo name falls through",
			appJSON:    `{"expo":{"name":"  "},"name":"RootName"}`,
			wantName:   "RootName",
			wantSource: entities.NameFromRootName,
		},
		{
			name:       "directory scan without app.json",
			wantName:   "Alpha",
			wantSource: entities.NameFromDirectoryScan,
		},
		{
			name:       "malformed app.json is ignored",
			appJSON:    `{"expo": {"name": "Broken"`,
			wantName:   "Alpha",
			wantSource: entities.NameFromDirectoryScan,
		},
		{
			name:       "schema-invalid app.json is ignored",
			appJSON:    `{"expo":{"name":42}}`,
			wantName:   "Alpha",
			wantSource: entities.NameFromDirectoryScan,
		},
		{
			name:       "non-object app.json is ignored",
			appJSON:    `["Demo"]`,
			wantName:   "Alpha",
			wantSource: entities.NameFromDirectoryScan,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newProject(t, tt.appJSON, "Pods", "build", ".hidden", "Zulu", "Alpha")

			layout, err := newResolver(nil).Resolve(context.Background(), dto.LayoutRequest{
				ProjectRoot: root,
				AppName:     tt.flag,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantName, layout.AppName)
			assert.Equal(t, tt.wantSource, layout.NameSource)
			assert.Equal(t, filepath.Join(root, "ios"), layout.NativeDir)
			assert.Equal(t, root, layout.ProjectRoot)
		})
	}
}

func TestLayoutResolver_SkipsReservedAndFiles(t *testing.T) {
	root := newProject(t, "", "Pods", "build")
	require.NoError(t, os.WriteFile(filepath.Join(root, "ios", "Podfile"), []byte(""), 0o600))

	_, err := newResolver(nil).Resolve(context.Background(), dto.LayoutRequest{ProjectRoot: root})
	require.Error(t, err)

	var cfgErr *apperrors.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Error(), "could not determine app name")
}

func TestLayoutResolver_MissingNativeDir(t *testing.T) {
	root := t.TempDir()

	_, err := newResolver(nil).Resolve(context.Background(), dto.LayoutRequest{ProjectRoot: root})

	var notFound *apperrors.ProjectNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, filepath.Join(root, "ios"), notFound.Dir)
}

func TestLayoutResolver_NativeDirIsFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "ios"), []byte(""), 0o600))

	_, err := newResolver(nil).Resolve(context.Background(), dto.LayoutRequest{ProjectRoot: root})

	var notFound *apperrors.ProjectNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestLayoutResolver_EmptyRoot(t *testing.T) {
	_, err := newResolver(nil).Resolve(context.Background(), dto.LayoutRequest{})

	var cfgErr *apperrors.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestLayoutResolver_AppVersion(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"1.2.3", "1.2.3"},
		{"v2.0", "2.0.0"},
		{"not-a-version", ""},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			root := newProject(t, `{"expo":{"name":"Demo","version":"`+tt.version+`"}}`, "Demo")

			layout, err := newResolver(nil).Resolve(context.Background(), dto.LayoutRequest{ProjectRoot: root})
			require.NoError(t, err)
			assert.Equal(t, tt.want, layout.AppVersion)
		})
	}
}

func TestLayoutResolver_Interactive(t *testing.T) {
	t.Run("prompts with several candidates", func(t *testing.T) {
		root := newProject(t, "", "Alpha", "Beta")
		picker := &stubPicker{interactive: true, choice: "Beta"}

		layout, err := newResolver(picker).Resolve(context.Background(), dto.LayoutRequest{
			ProjectRoot: root,
			Interactive: true,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"Alpha", "Beta"}, picker.offered)
		assert.Equal(t, "Beta", layout.AppName)
		assert.Equal(t, entities.NameFromPrompt, layout.NameSource)
	})

	t.Run("metadata name skips prompt", func(t *testing.T) {
		root := newProject(t, `{"expo":{"name":"Demo"}}`, "Alpha", "Beta")
		picker := &stubPicker{interactive: true, choice: "Beta"}

		layout, err := newResolver(picker).Resolve(context.Background(), dto.LayoutRequest{
			ProjectRoot: root,
			Interactive: true,
		})
		require.NoError(t, err)

		assert.Nil(t, picker.offered)
		assert.Equal(t, "Demo", layout.AppName)
	})

	t.Run("falls back to first without a terminal", func(t *testing.T) {
		root := newProject(t, "", "Alpha", "Beta")
		picker := &stubPicker{interactive: false, choice: "Beta"}

		layout, err := newResolver(picker).Resolve(context.Background(), dto.LayoutRequest{
			ProjectRoot: root,
			Interactive: true,
		})
		require.NoError(t, err)

		assert.Nil(t, picker.offered)
		assert.Equal(t, "Alpha", layout.AppName)
		assert.Equal(t, entities.NameFromDirectoryScan, layout.NameSource)
	})

	t.Run("cancelled prompt is an error", func(t *testing.T) {
		root := newProject(t, "", "Alpha", "Beta")
		picker := &stubPicker{interactive: true, err: errors.New("user aborted")}

		_, err := newResolver(picker).Resolve(context.Background(), dto.LayoutRequest{
			ProjectRoot: root,
			Interactive: true,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "user aborted")
	})
}

func TestLayoutResolver_ProjectConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "native", "ios", "Pods"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "native", "ios", "Legacy"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "native", "ios", "Mobile"), 0o755))
	cfg := "native_dir: native/ios\nreserved_dirs: [Pods, Legacy]\n"
	require.NoError(t, os.WriteFile(system.PathFor(root), []byte(cfg), 0o600))

	layout, err := newResolver(nil).Resolve(context.Background(), dto.LayoutRequest{ProjectRoot: root})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "native", "ios"), layout.NativeDir)
	assert.Equal(t, "Mobile", layout.AppName)
}
