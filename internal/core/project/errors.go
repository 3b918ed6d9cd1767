// Package project materializes a new project from a template repository:
// clone, manifest rewrite, dependency install, remote repoint, and branch
// history reset. It implements the core domain logic behind the interactive
// flow; prompting and error presentation live in the CLI layer.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrManifestMissing indicates the cloned template contains no package.json.
	// The pipeline stops there; dependencies are never installed and the
	// clone's git state is left untouched.
	ErrManifestMissing = errors.New("template has no package.json")
)
