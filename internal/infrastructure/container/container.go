// Package container provides dependency injection for the application.
package container

import (
	"log/slog"

	"github.com/entrig/entrig/internal/application/ports"
	"github.com/entrig/entrig/internal/application/services"
	"github.com/entrig/entrig/internal/infrastructure/filesystem"
	"github.com/entrig/entrig/internal/infrastructure/output"
	"github.com/entrig/entrig/internal/infrastructure/project"
	"github.com/entrig/entrig/internal/infrastructure/prompt"
	"github.com/entrig/entrig/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	storeFactory     ports.DocumentStoreFactory
	formatterFactory ports.ReportFormatterFactory
	setupIOSUseCase  *services.SetupIOSUseCase
	logger           *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger *slog.Logger

	// Picker overrides the terminal prompt; nil uses huh on stdin
	Picker ports.AppPicker

	// StoreFactory overrides the filesystem store; nil uses the local disk
	StoreFactory ports.DocumentStoreFactory
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Picker == nil {
		opts.Picker = prompt.NewHuhPicker()
	}
	if opts.StoreFactory == nil {
		opts.StoreFactory = filesystem.NewStoreFactory()
	}

	layoutResolver := project.NewLayoutResolver(system.NewConfigLoader(), opts.Picker, opts.Logger)

	setupIOSUseCase := services.NewSetupIOSUseCase(
		layoutResolver,
		opts.StoreFactory,
		opts.Logger,
	)

	return &Container{
		storeFactory:     opts.StoreFactory,
		formatterFactory: output.NewFormatterFactory(),
		setupIOSUseCase:  setupIOSUseCase,
		logger:           opts.Logger,
	}, nil
}

// SetupIOSUseCase returns the setup use case.
func (c *Container) SetupIOSUseCase() *services.SetupIOSUseCase {
	return c.setupIOSUseCase
}

// FormatterFactory returns the report formatter factory.
func (c *Container) FormatterFactory() ports.ReportFormatterFactory {
	return c.formatterFactory
}

// Logger returns the logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
