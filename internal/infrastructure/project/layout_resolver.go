// Package project resolves where a React Native / Expo project keeps its
// native iOS sources and which app they belong to.
package project

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/entrig/entrig/internal/application/dto"
	apperrors "github.com/entrig/entrig/internal/application/errors"
	"github.com/entrig/entrig/internal/application/ports"
	"github.com/entrig/entrig/internal/domain/entities"
	"github.com/entrig/entrig/internal/infrastructure/system"
)

// LayoutResolver implements ports.LayoutResolver against the local filesystem.
type LayoutResolver struct {
	configs *system.ConfigLoader
	picker  ports.AppPicker
	logger  *slog.Logger
}

// NewLayoutResolver creates a resolver. picker may be nil, in which case
// the directory scan never prompts.
func NewLayoutResolver(configs *system.ConfigLoader, picker ports.AppPicker, logger *slog.Logger) *LayoutResolver {
	if configs == nil {
		configs = system.NewConfigLoader()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &LayoutResolver{
		configs: configs,
		picker:  picker,
		logger:  logger,
	}
}

// Resolve locates the native project under req.ProjectRoot and determines
// the app name: explicit flag, then app.json expo.name, then app.json name,
// then the first eligible directory under the native project.
func (r *LayoutResolver) Resolve(ctx context.Context, req dto.LayoutRequest) (entities.ProjectLayout, error) {
	if req.ProjectRoot == "" {
		return entities.ProjectLayout{}, apperrors.NewConfigurationError("project", "project root is required", nil)
	}

	cfg, err := r.configs.Load(system.PathFor(req.ProjectRoot))
	if err != nil {
		return entities.ProjectLayout{}, apperrors.NewConfigurationError("project config", "could not load", err)
	}

	nativeDir := filepath.Join(req.ProjectRoot, cfg.NativeDir)
	if info, err := os.Stat(nativeDir); err != nil || !info.IsDir() {
		return entities.ProjectLayout{}, apperrors.NewProjectNotFoundError(nativeDir)
	}

	meta := r.readAppMetadata(ctx, filepath.Join(req.ProjectRoot, cfg.AppMetadataFile))

	name, source, err := r.resolveName(ctx, req, meta, nativeDir, cfg)
	if err != nil {
		return entities.ProjectLayout{}, err
	}

	layout, err := entities.NewProjectLayout(req.ProjectRoot, nativeDir, name, source)
	if err != nil {
		return entities.ProjectLayout{}, apperrors.NewConfigurationError("app name", "unusable app name", err)
	}
	layout.AppVersion = meta.Version

	r.logger.DebugContext(ctx, "resolved project layout",
		"app", layout.AppName,
		"source", layout.NameSource,
		"version", layout.AppVersion)

	return layout, nil
}

func (r *LayoutResolver) resolveName(
	ctx context.Context,
	req dto.LayoutRequest,
	meta appMetadata,
	nativeDir string,
	cfg *system.Config,
) (string, entities.NameSource, error) {
	if name := strings.TrimSpace(req.AppName); name != "" {
		return name, entities.NameFromFlag, nil
	}
	if meta.Name != "" {
		return meta.Name, meta.Source, nil
	}

	candidates, err := appDirCandidates(nativeDir, cfg)
	if err != nil {
		return "", "", apperrors.NewConfigurationError("app name", "could not scan native project", err)
	}
	if len(candidates) == 0 {
		return "", "", apperrors.NewConfigurationError("app name", "could not determine app name", nil)
	}

	if req.Interactive && len(candidates) > 1 {
		if r.picker != nil && r.picker.IsInteractive() {
			choice, err := r.picker.PickApp(candidates)
			if err != nil {
				return "", "", fmt.Errorf("app selection cancelled: %w", err)
			}
			return choice, entities.NameFromPrompt, nil
		}
		r.logger.WarnContext(ctx, "not a terminal, using first app directory", "candidates", candidates)
	}

	return candidates[0], entities.NameFromDirectoryScan, nil
}

// appDirCandidates lists directories under nativeDir in lexicographic order,
// skipping hidden and reserved ones.
func appDirCandidates(nativeDir string, cfg *system.Config) ([]string, error) {
	entries, err := os.ReadDir(nativeDir)
	if err != nil {
		return nil, err
	}

	var candidates []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || cfg.IsReserved(name) {
			continue
		}
		if !isDir(filepath.Join(nativeDir, name), entry) {
			continue
		}
		candidates = append(candidates, name)
	}
	return candidates, nil
}

// isDir follows symlinks, matching a stat-based check.
func isDir(path string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
