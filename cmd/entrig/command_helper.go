package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/entrig/entrig/internal/infrastructure/container"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// containerOptions is swapped in tests to inject fakes.
var containerOptions = func() container.Options {
	return container.Options{Logger: slog.Default()}
}

// withContainer wraps a command handler with container initialization.
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		opts := containerOptions()

		c, err := container.New(opts)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx := &CommandContext{
			Container: c,
			Logger:    c.Logger(),
			Context:   cmd.Context(),
		}

		return handler(ctx, cmd, args)
	}
}
