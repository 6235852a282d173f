package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/entrig/entrig/internal/application/dto"
	apperrors "github.com/entrig/entrig/internal/application/errors"
	"github.com/entrig/entrig/internal/application/ports"
	"github.com/entrig/entrig/internal/version"
)

const setupUsage = "entrig setup ios"

var setupOpts = DefaultSetupOptions()

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup <platform>",
	Short: "Configure a native project for push notifications",
	Long: `Declare push notification support in the native project generated by
"npx expo prebuild". For ios this:

  - adds aps-environment to <App>/<App>.entitlements, creating it if needed
  - adds remote-notification to UIBackgroundModes in <App>/Info.plist

Both changes are idempotent. Existing files are backed up to *.backup
before they are modified.`,
	Example: `  entrig setup ios
  entrig setup ios --app-name MyApp --dry-run
  entrig setup ios --format json --output setup-report.json`,
	RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, args []string) error {
		if err := validatePlatform(args); err != nil {
			return err
		}

		setupOpts.ApplyConfig()
		if err := setupOpts.ValidateFlags(); err != nil {
			return err
		}

		projectRoot, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}

		return runSetupIOS(cc, setupOpts, projectRoot, cmd.OutOrStdout())
	}),
}

func init() {
	rootCmd.AddCommand(setupCmd)
	setupOpts.RegisterFlags(setupCmd)
}

func validatePlatform(args []string) error {
	if len(args) == 0 {
		return apperrors.NewUsageError("missing platform", setupUsage)
	}
	if len(args) > 1 {
		return apperrors.NewUsageError(fmt.Sprintf("too many arguments: %v", args), setupUsage)
	}
	if args[0] != "ios" {
		return apperrors.NewUsageError(fmt.Sprintf("unsupported platform: %q", args[0]), setupUsage)
	}
	return nil
}

// runSetupIOS runs the use case for projectRoot and writes the report.
// Patch failures are part of the report and do not produce an error.
func runSetupIOS(cc *CommandContext, opts SetupOptions, projectRoot string, stdout io.Writer) error {
	ctx := cc.Context
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := cc.Container.SetupIOSUseCase().Execute(ctx, dto.SetupIOSRequest{
		ProjectRoot: projectRoot,
		AppName:     opts.AppName,
		Options: dto.SetupOptions{
			DryRun:      opts.DryRun,
			Interactive: opts.Interactive,
		},
		Metadata: dto.RequestMetadata{
			ToolVersion: version.Get().String(),
		},
	})
	if err != nil {
		return err
	}

	writer := stdout
	if opts.OutFile != "" {
		//nolint:gosec // G304: User-controlled output file path is intentional
		file, err := os.Create(opts.OutFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = file.Close() // Best-effort cleanup
		}()
		writer = file
		cc.Logger.Info("writing output", "file", opts.OutFile, "format", opts.Format)
	}

	formatter, err := cc.Container.FormatterFactory().Create(opts.Format, writer, ports.FormatterOptions{
		Indent: true,
		Color:  opts.UseColor(writer),
	})
	if err != nil {
		return err
	}

	if err := formatter.Format(resp.Report); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return nil
}
