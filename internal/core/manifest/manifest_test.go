package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const templateManifest = `{
  "name": "ts-template",
  "version": "0.3.2",
  "description": "starter",
  "author": "someone",
  "license": "MIT",
  "keywords": ["typescript"],
  "scripts": {
    "build": "tsc",
    "dev": "ts-node src/index.ts"
  },
  "dependencies": {
    "zod": "^3.0.0"
  }
}
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func reload(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read rewritten manifest: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("parse rewritten manifest: %v", err)
	}
	return fields
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "package.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeManifest(t, "{not json")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed manifest")
	}
}

func TestApplyAndSave(t *testing.T) {
	path := writeManifest(t, templateManifest)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	doc.Apply(Meta{
		Name:          "demo",
		Description:   "",
		Author:        "",
		License:       "ISC",
		Keywords:      []string{"a", "b"},
		RepositoryURL: "https://github.com/acme/ts-template",
	})
	if err := doc.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fields := reload(t, path)
	if fields["name"] != "demo" {
		t.Errorf("name = %v, want demo", fields["name"])
	}
	if fields["version"] != "1.0.0" {
		t.Errorf("version = %v, want 1.0.0", fields["version"])
	}
	if fields["license"] != "ISC" {
		t.Errorf("license = %v, want ISC", fields["license"])
	}

	keywords, ok := fields["keywords"].([]any)
	if !ok || len(keywords) != 2 || keywords[0] != "a" || keywords[1] != "b" {
		t.Errorf("keywords = %v, want [a b]", fields["keywords"])
	}

	repo, ok := fields["repository"].(map[string]any)
	if !ok {
		t.Fatalf("repository is not an object: %v", fields["repository"])
	}
	if repo["url"] != "https://github.com/acme/ts-template" {
		t.Errorf("repository.url = %v, want template URL", repo["url"])
	}

	bugs, ok := fields["bugs"].(map[string]any)
	if !ok {
		t.Fatalf("bugs is not an object: %v", fields["bugs"])
	}
	bugsURL, _ := bugs["url"].(string)
	if !strings.HasSuffix(bugsURL, "/issues") {
		t.Errorf("bugs.url = %q, want /issues suffix", bugsURL)
	}

	homepage, _ := fields["homepage"].(string)
	if !strings.HasSuffix(homepage, "#readme") {
		t.Errorf("homepage = %q, want #readme suffix", homepage)
	}

	// Untouched fields survive the rewrite.
	scripts, ok := fields["scripts"].(map[string]any)
	if !ok || scripts["build"] != "tsc" {
		t.Errorf("scripts were not preserved: %v", fields["scripts"])
	}
	deps, ok := fields["dependencies"].(map[string]any)
	if !ok || deps["zod"] != "^3.0.0" {
		t.Errorf("dependencies were not preserved: %v", fields["dependencies"])
	}
}

func TestApplyStripsGitSuffix(t *testing.T) {
	path := writeManifest(t, templateManifest)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	doc.Apply(Meta{
		Name:          "demo",
		License:       "ISC",
		RepositoryURL: "git@github.com:acme/widget.git",
	})

	bugs := doc.fields["bugs"].(map[string]any)
	if bugs["url"] != "git@github.com:acme/widget/issues" {
		t.Errorf("bugs.url = %v, want git@github.com:acme/widget/issues", bugs["url"])
	}
	if doc.fields["homepage"] != "git@github.com:acme/widget#readme" {
		t.Errorf("homepage = %v, want git@github.com:acme/widget#readme", doc.fields["homepage"])
	}
	repo := doc.fields["repository"].(map[string]any)
	if repo["url"] != "git@github.com:acme/widget.git" {
		t.Errorf("repository.url = %v, want the unstripped URL", repo["url"])
	}
}

func TestApplyConstructsSubObjects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "absent",
			content: `{"name": "x", "version": "0.0.1"}`,
		},
		{
			name:    "string_shorthand",
			content: `{"name": "x", "repository": "github:acme/x", "bugs": "mail@acme.dev"}`,
		},
		{
			name:    "null",
			content: `{"name": "x", "repository": null, "bugs": null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			doc, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}

			doc.Apply(Meta{Name: "x", License: "ISC", RepositoryURL: "https://github.com/acme/x"})

			repo, ok := doc.fields["repository"].(map[string]any)
			if !ok {
				t.Fatalf("repository not constructed: %v", doc.fields["repository"])
			}
			if repo["url"] != "https://github.com/acme/x" {
				t.Errorf("repository.url = %v", repo["url"])
			}
			bugs, ok := doc.fields["bugs"].(map[string]any)
			if !ok {
				t.Fatalf("bugs not constructed: %v", doc.fields["bugs"])
			}
			if bugs["url"] != "https://github.com/acme/x/issues" {
				t.Errorf("bugs.url = %v", bugs["url"])
			}
		})
	}
}

func TestApplyKeepsExistingRepositoryObject(t *testing.T) {
	path := writeManifest(t, `{"repository": {"type": "git", "url": "old"}}`)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	doc.Apply(Meta{Name: "x", License: "ISC", RepositoryURL: "https://github.com/acme/x"})

	repo := doc.fields["repository"].(map[string]any)
	if repo["type"] != "git" {
		t.Errorf("existing repository.type was dropped: %v", repo)
	}
	if repo["url"] != "https://github.com/acme/x" {
		t.Errorf("repository.url = %v", repo["url"])
	}
}

func TestSaveEmptyKeywordsAsArray(t *testing.T) {
	path := writeManifest(t, templateManifest)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	doc.Apply(Meta{Name: "x", License: "ISC", RepositoryURL: "https://github.com/acme/x"})
	if err := doc.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read rewritten manifest: %v", err)
	}
	if !strings.Contains(string(data), `"keywords": []`) {
		t.Errorf("empty keywords should serialize as [], got:\n%s", data)
	}
}

func TestSaveFormatting(t *testing.T) {
	t.Run("indentation_and_trailing_newline", func(t *testing.T) {
		path := writeManifest(t, templateManifest)
		doc, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		doc.Apply(Meta{Name: "demo", License: "ISC", RepositoryURL: "https://github.com/acme/x"})
		if err := doc.Save(); err != nil {
			t.Fatalf("Save: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read rewritten manifest: %v", err)
		}
		if !strings.Contains(string(data), "\n  \"name\": \"demo\"") {
			t.Errorf("expected 2-space indentation, got:\n%s", data)
		}
		if data[len(data)-1] != '\n' {
			t.Error("source ended with a newline, rewrite should too")
		}
	})

	t.Run("no_trailing_newline", func(t *testing.T) {
		path := writeManifest(t, `{"name": "x"}`)
		doc, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		doc.Apply(Meta{Name: "demo", License: "ISC", RepositoryURL: "https://github.com/acme/x"})
		if err := doc.Save(); err != nil {
			t.Fatalf("Save: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read rewritten manifest: %v", err)
		}
		if data[len(data)-1] == '\n' {
			t.Error("source had no trailing newline, rewrite should not add one")
		}
	})
}
