// Package cli provides the Cobra command tree and dependency injection
// wiring for the tsmaker CLI. This file defines the Dependencies struct
// (Composition Root) that wires the domain modules together.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/PedroSales117/ts-cli-template-maker/internal/core/git"
	"github.com/PedroSales117/ts-cli-template-maker/internal/core/npm"
	"github.com/PedroSales117/ts-cli-template-maker/internal/core/project"
)

// Dependencies holds the domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together. Commands reach the project
// initializer through its interface only.
type Dependencies struct {
	Initializer project.Initializer
	Logger      *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
// CLI commands access this through the package-level variable.
var deps *Dependencies

// InitDependencies creates and wires all domain dependencies. It runs after
// flag parsing so the logger can honor --verbose; without the flag, internal
// logs are discarded and only the step banners reach the terminal.
func InitDependencies(verbose bool) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	deps = &Dependencies{
		Initializer: project.NewInitializer(git.NewRunner(logger), npm.NewInstaller(logger), logger),
		Logger:      logger,
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
