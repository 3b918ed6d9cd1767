// Package npm runs the dependency installer inside the scaffolded project.
package npm

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/PedroSales117/ts-cli-template-maker/internal/core/execx"
)

// Installer runs npm with inherited stdio so install logs stream straight to
// the user.
type Installer struct {
	logger *slog.Logger

	run func(ctx context.Context, dir, name string, args ...string) error
}

// NewInstaller returns an Installer. A nil logger discards debug output.
func NewInstaller(logger *slog.Logger) *Installer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Installer{
		logger: logger.With("module", "npm"),
		run:    execx.Run,
	}
}

// Install runs `npm install` inside dir and blocks until it exits.
func (i *Installer) Install(ctx context.Context, dir string) error {
	i.logger.Debug("installing dependencies", "dir", dir)
	if err := i.run(ctx, dir, "npm", "install"); err != nil {
		return fmt.Errorf("install dependencies: %w", err)
	}
	return nil
}
