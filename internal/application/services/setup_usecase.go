package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/entrig/entrig/internal/application/dto"
	"github.com/entrig/entrig/internal/application/ports"
	"github.com/entrig/entrig/internal/domain/entities"
)

// SetupIOSUseCase orchestrates one `setup ios` run: resolve the project
// layout, then attempt both patches in order. A skipped or unparsable
// target never stops the other patch; it is only reflected in the report.
type SetupIOSUseCase struct {
	resolver ports.LayoutResolver
	stores   ports.DocumentStoreFactory
	logger   *slog.Logger
}

// NewSetupIOSUseCase creates a new setup use case.
func NewSetupIOSUseCase(
	resolver ports.LayoutResolver,
	stores ports.DocumentStoreFactory,
	logger *slog.Logger,
) *SetupIOSUseCase {
	if logger == nil {
		logger = slog.Default()
	}

	return &SetupIOSUseCase{
		resolver: resolver,
		stores:   stores,
		logger:   logger,
	}
}

type patchOperation func(context.Context, entities.ProjectLayout) (entities.PatchResult, error)

// Execute runs the setup workflow.
func (uc *SetupIOSUseCase) Execute(ctx context.Context, req dto.SetupIOSRequest) (*dto.SetupIOSResponse, error) {
	startTime := time.Now()

	layout, err := uc.resolver.Resolve(ctx, dto.LayoutRequest{
		ProjectRoot: req.ProjectRoot,
		AppName:     req.AppName,
		Interactive: req.Options.Interactive,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("found iOS project",
		"app", layout.AppName,
		"source", layout.NameSource,
		"native_dir", layout.Rel(layout.NativeDir))

	patcher := NewConfigPatcher(uc.stores.NewStore(req.Options.DryRun), uc.logger)

	report := entities.NewSetupReport(layout, req.Metadata.ToolVersion)
	report.DryRun = req.Options.DryRun

	operations := []patchOperation{
		patcher.PatchEntitlements,
		patcher.PatchBackgroundModes,
	}
	for _, op := range operations {
		result, err := op(ctx, layout)
		if err != nil {
			return nil, fmt.Errorf("setup aborted: %w", err)
		}
		report.Add(result)
	}
	report.Complete()

	uc.logger.Info("setup complete",
		"duration", report.Duration,
		"created", report.Summary.Created,
		"patched", report.Summary.Patched,
		"already_satisfied", report.Summary.AlreadySatisfied,
		"skipped", report.Summary.Skipped,
		"failed", report.Summary.Failed,
		"dry_run", report.DryRun)

	return &dto.SetupIOSResponse{
		Report: report,
		Metadata: dto.ResponseMetadata{
			ProcessedAt: time.Now(),
			Duration:    time.Since(startTime),
		},
	}, nil
}
