package defs

// Common file and directory names used across the project.
const (
	// ManifestFile is the project manifest rewritten after cloning.
	ManifestFile = "package.json"

	// ConfigDir is the directory under the user config root that holds
	// the preferences file.
	ConfigDir = "ts-cli-template-maker"

	// ConfigFile is the optional YAML preferences file.
	ConfigFile = "config.yaml"
)

// Fixed values the materialization pipeline writes or compares against.
const (
	// ManifestVersion is the version every scaffolded manifest starts at.
	ManifestVersion = "1.0.0"

	// DefaultLicense is the license used when the user accepts the default.
	DefaultLicense = "ISC"

	// DefaultMainBranch is the preselected main-branch choice.
	DefaultMainBranch = "main"

	// CancelSentinel cancels the run when entered at a validated prompt.
	// Matching is case-insensitive.
	CancelSentinel = "c"

	// TemplateHostOrigin is the only origin accepted for https template
	// and remote URLs.
	TemplateHostOrigin = "https://github.com"
)
