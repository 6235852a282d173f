// Package services contains application use cases.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	apperrors "github.com/entrig/entrig/internal/application/errors"
	"github.com/entrig/entrig/internal/application/ports"
	"github.com/entrig/entrig/internal/domain/entities"
	"github.com/entrig/entrig/internal/domain/services"
	"github.com/entrig/entrig/internal/domain/values"
)

// ConfigPatcher declares push-notification capabilities in a native iOS
// project. Both operations are independent and idempotent: a document that
// already declares the capability is never written, and a backup is taken
// only when an existing document is about to be mutated.
//
// Concurrent runs against the same project are not supported; the last
// writer wins.
type ConfigPatcher struct {
	store  ports.DocumentStore
	logger *slog.Logger
}

// NewConfigPatcher creates a patcher writing through store.
func NewConfigPatcher(store ports.DocumentStore, logger *slog.Logger) *ConfigPatcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &ConfigPatcher{
		store:  store,
		logger: logger,
	}
}

// PatchEntitlements ensures the app's entitlements declare aps-environment.
// I/O errors are returned; every other outcome is reported in the result.
func (p *ConfigPatcher) PatchEntitlements(ctx context.Context, layout entities.ProjectLayout) (entities.PatchResult, error) {
	const target = values.TargetEntitlements
	candidates := layout.EntitlementsCandidates()

	path, found, err := p.firstExisting(candidates)
	if err != nil {
		return entities.PatchResult{}, err
	}
	if !found {
		return p.createEntitlements(ctx, layout, candidates[0])
	}

	p.logger.InfoContext(ctx, "checking entitlements", "path", layout.Rel(path))

	doc, err := p.load(path)
	if err != nil {
		return entities.PatchResult{}, err
	}

	if doc.Check(services.HasAPSEnvironment) {
		p.logger.InfoContext(ctx, "aps-environment already configured", "path", layout.Rel(path))
		return entities.NewPatchResult(target, path, values.StatusAlreadySatisfied,
			"aps-environment already configured"), nil
	}

	patched, err := services.InsertAPSEnvironment(doc.Content)
	if err != nil {
		return p.parseFailure(ctx, target, path, err)
	}

	return p.commit(ctx, target, doc, patched, "added aps-environment to entitlements")
}

// PatchBackgroundModes ensures Info.plist lists remote-notification under
// UIBackgroundModes. I/O errors are returned; every other outcome is
// reported in the result.
func (p *ConfigPatcher) PatchBackgroundModes(ctx context.Context, layout entities.ProjectLayout) (entities.PatchResult, error) {
	const target = values.TargetBackgroundModes
	path := layout.InfoPlistPath()

	exists, err := p.store.FileExists(path)
	if err != nil {
		return entities.PatchResult{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !exists {
		missing := apperrors.NewTargetMissingError(string(target), path)
		p.logger.WarnContext(ctx, "Info.plist not found", "path", layout.Rel(path), "error", missing)
		return entities.NewPatchResult(target, path, values.StatusSkippedMissingTarget, missing.Error()), nil
	}

	p.logger.InfoContext(ctx, "checking Info.plist", "path", layout.Rel(path))

	doc, err := p.load(path)
	if err != nil {
		return entities.PatchResult{}, err
	}

	if doc.Check(services.HasRemoteNotificationMode) {
		p.logger.InfoContext(ctx, "UIBackgroundModes already configured", "path", layout.Rel(path))
		return entities.NewPatchResult(target, path, values.StatusAlreadySatisfied,
			"UIBackgroundModes already configured"), nil
	}

	patched, err := services.InsertRemoteNotificationMode(doc.Content)
	if err != nil {
		return p.parseFailure(ctx, target, path, err)
	}

	return p.commit(ctx, target, doc, patched, "added remote-notification to UIBackgroundModes")
}

// createEntitlements writes a fresh entitlements document at path, provided
// the per-app directory has already been generated.
func (p *ConfigPatcher) createEntitlements(
	ctx context.Context,
	layout entities.ProjectLayout,
	path string,
) (entities.PatchResult, error) {
	const target = values.TargetEntitlements
	dir := filepath.Dir(path)

	dirExists, err := p.store.DirExists(dir)
	if err != nil {
		return entities.PatchResult{}, fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !dirExists {
		missing := apperrors.NewTargetMissingError(string(target), dir)
		p.logger.WarnContext(ctx, "app directory not found", "dir", layout.Rel(dir), "error", missing)
		return entities.NewPatchResult(target, path, values.StatusSkippedMissingTarget, missing.Error()), nil
	}

	if err := p.store.Write(path, []byte(services.DefaultEntitlements())); err != nil {
		return entities.PatchResult{}, fmt.Errorf("failed to create %s: %w", path, err)
	}

	p.logger.InfoContext(ctx, "created entitlements file", "path", layout.Rel(path))
	return entities.NewPatchResult(target, path, values.StatusCreated,
		"created entitlements file with aps-environment"), nil
}

// commit backs up the original document, then writes the patched text.
// Landmarks have already been located, so a parse failure can never leave
// a fresh backup behind.
func (p *ConfigPatcher) commit(
	ctx context.Context,
	target values.Target,
	doc *entities.ConfigDocument,
	patched string,
	message string,
) (entities.PatchResult, error) {
	backup := doc.BackupPath()
	if err := p.store.Backup(doc.Path, backup); err != nil {
		return entities.PatchResult{}, fmt.Errorf("failed to back up %s: %w", doc.Path, err)
	}
	p.logger.InfoContext(ctx, "backup created", "path", backup)

	if err := p.store.Write(doc.Path, []byte(patched)); err != nil {
		return entities.PatchResult{}, fmt.Errorf("failed to write %s: %w", doc.Path, err)
	}
	p.logger.InfoContext(ctx, message, "path", doc.Path)

	return entities.NewPatchResult(target, doc.Path, values.StatusPatched, message).WithBackup(backup), nil
}

func (p *ConfigPatcher) parseFailure(
	ctx context.Context,
	target values.Target,
	path string,
	err error,
) (entities.PatchResult, error) {
	if !errors.Is(err, services.ErrLandmarkNotFound) {
		return entities.PatchResult{}, err
	}

	parseErr := apperrors.NewParseError(path, err)
	p.logger.ErrorContext(ctx, "could not parse document", "target", target, "error", parseErr)
	return entities.NewPatchResult(target, path, values.StatusFailedParse, parseErr.Error()), nil
}

func (p *ConfigPatcher) load(path string) (*entities.ConfigDocument, error) {
	data, err := p.store.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return entities.NewConfigDocument(path, data), nil
}

func (p *ConfigPatcher) firstExisting(paths []string) (string, bool, error) {
	for _, path := range paths {
		exists, err := p.store.FileExists(path)
		if err != nil {
			return "", false, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if exists {
			return path, true, nil
		}
	}
	return "", false, nil
}
