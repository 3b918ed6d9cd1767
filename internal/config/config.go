// Package config loads the optional preferences file that seeds wizard
// defaults. Preferences never gate a run: a missing file, an unreadable file,
// or an invalid value falls back to the built-in defaults with at most a
// warning.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/PedroSales117/ts-cli-template-maker/internal/defs"
	"github.com/PedroSales117/ts-cli-template-maker/internal/locale"
	"github.com/PedroSales117/ts-cli-template-maker/pkg/models"
)

// ErrInvalidYAML indicates invalid YAML syntax in the preferences file.
var ErrInvalidYAML = errors.New("config: invalid YAML syntax")

// Preferences seed the wizard's prompt defaults. Empty fields fall back to
// the built-in defaults, so a clean machine behaves the same as no file at
// all. The user can override every value interactively.
type Preferences struct {
	Language   string `yaml:"language"`    // "en" or "pt"; region variants collapse ("pt-BR" -> "pt").
	License    string `yaml:"license"`     // Free text.
	Author     string `yaml:"author"`      // Free text.
	URLKind    string `yaml:"url_kind"`    // "https" or "ssh".
	MainBranch string `yaml:"main_branch"` // "master" or "main".
}

// Path returns the preferences file location under the user config directory
// ($XDG_CONFIG_HOME, falling back to ~/.config on Unix).
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, defs.ConfigDir, defs.ConfigFile), nil
}

// Load reads the preferences at path. A missing file is normal and yields
// empty Preferences; an unreadable or unparseable file does too, after a
// warning. Invalid field values are warned about individually and cleared.
func Load(path string, logger *slog.Logger) *Preferences {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("module", "config")

	prefs := &Preferences{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("failed to read preferences, using defaults", "path", path, "error", err)
		}
		return prefs
	}

	if err := yaml.Unmarshal(data, prefs); err != nil {
		logger.Warn("failed to parse preferences, using defaults",
			"path", path,
			"error", fmt.Errorf("parse %s: %w", filepath.Base(path), ErrInvalidYAML),
		)
		return &Preferences{}
	}

	prefs.sanitize(logger)
	return prefs
}

// sanitize clears fields whose values the wizard could not use.
func (p *Preferences) sanitize(logger *slog.Logger) {
	if p.Language != "" {
		if lang, ok := locale.Parse(p.Language); ok {
			p.Language = lang.String()
		} else {
			logger.Warn("ignoring unsupported preference", "field", "language", "value", p.Language)
			p.Language = ""
		}
	}
	if p.URLKind != "" && !models.URLKind(p.URLKind).IsValid() {
		logger.Warn("ignoring unsupported preference", "field", "url_kind", "value", p.URLKind)
		p.URLKind = ""
	}
	if p.MainBranch != "" && !slices.Contains(models.MainBranchNames(), p.MainBranch) {
		logger.Warn("ignoring unsupported preference", "field", "main_branch", "value", p.MainBranch)
		p.MainBranch = ""
	}
}
