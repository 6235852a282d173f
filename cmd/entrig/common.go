package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var validFormats = []string{"table", "json", "yaml", "junit", "sarif"}

// SetupOptions contains the flags of the setup command.
type SetupOptions struct {
	// Output
	Format  string
	OutFile string

	// Project
	AppName string

	// Flags (bools grouped for alignment)
	DryRun      bool
	Interactive bool
	NoColor     bool
}

// DefaultSetupOptions returns sensible defaults.
func DefaultSetupOptions() SetupOptions {
	return SetupOptions{
		Format: "table",
	}
}

// RegisterFlags adds the setup flags to a cobra command and binds the
// ones that make sense as persistent defaults to viper.
func (opts *SetupOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.AppName, "app-name", opts.AppName,
		"App name (default: from app.json or the ios/ directory)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", opts.DryRun,
		"Report what would change without writing any file")
	cmd.Flags().BoolVar(&opts.Interactive, "interactive", opts.Interactive,
		"Ask which app directory to use when several exist")

	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Output format: "+strings.Join(validFormats, ", "))
	cmd.Flags().StringVarP(&opts.OutFile, "output", "o", opts.OutFile,
		"Output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", opts.NoColor,
		"Disable colored output")

	for _, name := range []string{"format", "interactive", "no-color"} {
		_ = viper.BindPFlag(name, cmd.Flags().Lookup(name))
	}
}

// ApplyConfig fills options from viper, so $HOME/.entrig.yaml and
// ENTRIG_* variables act as defaults for flags not given explicitly.
func (opts *SetupOptions) ApplyConfig() {
	if format := viper.GetString("format"); format != "" {
		opts.Format = format
	}
	opts.Interactive = viper.GetBool("interactive")
	opts.NoColor = viper.GetBool("no-color")
}

// ValidateFlags validates setup options.
func (opts *SetupOptions) ValidateFlags() error {
	for _, f := range validFormats {
		if opts.Format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s (valid: %s)", opts.Format, strings.Join(validFormats, ", "))
}

// UseColor reports whether the table output should be colored.
func (opts *SetupOptions) UseColor(w io.Writer) bool {
	if opts.NoColor || opts.OutFile != "" {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: fd fits in int
}
