// Package manifest reads and rewrites the cloned template's package.json.
// The document round-trips through a generic map so fields the rewrite does
// not touch (scripts, dependencies, ...) survive verbatim.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PedroSales117/ts-cli-template-maker/internal/defs"
)

// Meta carries the answers written into the manifest. RepositoryURL is the
// already-resolved repository URL: the new remote when one was given,
// otherwise the template URL.
type Meta struct {
	Name          string
	Description   string
	Author        string
	License       string
	Keywords      []string
	RepositoryURL string
}

// Document is a loaded manifest. The in-memory form is the sole source of
// truth written back; no merge with concurrent edits is attempted.
type Document struct {
	path            string
	fields          map[string]any
	trailingNewline bool
}

// Load reads the manifest at path. A missing file surfaces fs.ErrNotExist
// through the error chain so callers can treat it as a user-facing condition.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", filepath.Base(path), err)
	}

	return &Document{
		path:            path,
		fields:          fields,
		trailingNewline: len(data) > 0 && data[len(data)-1] == '\n',
	}, nil
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Apply overwrites the scaffold metadata. The version is pinned to the fixed
// initial version, and bugs/homepage are derived from the repository URL with
// any trailing .git suffix stripped. The repository and bugs sub-objects are
// constructed when absent or of the wrong shape rather than assumed.
func (d *Document) Apply(meta Meta) {
	d.fields["name"] = meta.Name
	d.fields["version"] = defs.ManifestVersion
	d.fields["description"] = meta.Description
	d.fields["author"] = meta.Author
	d.fields["license"] = meta.License

	keywords := meta.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	d.fields["keywords"] = keywords

	subObject(d.fields, "repository")["url"] = meta.RepositoryURL

	base := strings.TrimSuffix(meta.RepositoryURL, ".git")
	subObject(d.fields, "bugs")["url"] = base + "/issues"
	d.fields["homepage"] = base + "#readme"
}

// Save writes the document back 2-space indented, keeping the source's
// trailing-newline behavior. The write either lands in full or the error
// propagates; no partial-write recovery is attempted.
func (d *Document) Save() error {
	data, err := json.MarshalIndent(d.fields, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if d.trailingNewline {
		data = append(data, '\n')
	}
	if err := os.WriteFile(d.path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// subObject returns fields[key] as an object, replacing anything that is not
// one (absent, string shorthand, null) with a fresh map.
func subObject(fields map[string]any, key string) map[string]any {
	if m, ok := fields[key].(map[string]any); ok {
		return m
	}
	m := map[string]any{}
	fields[key] = m
	return m
}
