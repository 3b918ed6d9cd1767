package cli

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/PedroSales117/ts-cli-template-maker/internal/locale"
	"github.com/PedroSales117/ts-cli-template-maker/pkg/models"
)

// answerFlags lists the string flags consumed by answersFromFlags.
var answerFlags = []string{
	"lang", "name", "kind", "template", "branch", "remote",
	"package", "description", "author", "license", "keywords", "main-branch",
}

// resetFlags returns every answer flag to its default so tests do not leak
// values into each other through the shared command.
func resetFlags(t *testing.T) {
	t.Helper()
	fs := rootCmd.Flags()
	for _, name := range answerFlags {
		if err := fs.Set(name, ""); err != nil {
			t.Fatalf("reset --%s: %v", name, err)
		}
		fs.Lookup(name).Changed = false
	}
	if err := fs.Set("non-interactive", "false"); err != nil {
		t.Fatalf("reset --non-interactive: %v", err)
	}
	fs.Lookup("non-interactive").Changed = false
}

// setFlags applies the given flag values to the root command.
func setFlags(t *testing.T, values map[string]string) {
	t.Helper()
	for name, value := range values {
		if err := rootCmd.Flags().Set(name, value); err != nil {
			t.Fatalf("set --%s=%q: %v", name, value, err)
		}
	}
}

func TestAnswersFromFlagsComplete(t *testing.T) {
	resetFlags(t)
	setFlags(t, map[string]string{
		"lang":        "pt",
		"name":        "demo",
		"kind":        "ssh",
		"template":    "git@github.com:acme/ts-template.git",
		"branch":      "develop",
		"remote":      "git@github.com:me/demo.git",
		"package":     "@me/demo",
		"description": "A demo service",
		"author":      "Ana Dev",
		"license":     "MIT",
		"keywords":    "cli, tooling ,,typescript ",
		"main-branch": "master",
	})

	msgs := locale.New(locale.DefaultLanguage)
	got, err := answersFromFlags(rootCmd, msgs)
	if err != nil {
		t.Fatalf("answersFromFlags() error = %v", err)
	}

	want := &models.ProjectAnswers{
		ProjectName: "demo",
		URLKind:     models.URLKindSSH,
		TemplateURL: "git@github.com:acme/ts-template.git",
		BranchName:  "develop",
		NewRepoURL:  "git@github.com:me/demo.git",
		PackageName: "@me/demo",
		Description: "A demo service",
		Author:      "Ana Dev",
		License:     "MIT",
		Keywords:    []string{"cli", "tooling", "typescript"},
		MainBranch:  "master",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("answersFromFlags() = %+v, want %+v", got, want)
	}
	if msgs.Language() != locale.Portuguese {
		t.Errorf("Language() = %q, want %q", msgs.Language(), locale.Portuguese)
	}
}

func TestAnswersFromFlagsDefaults(t *testing.T) {
	resetFlags(t)
	setFlags(t, map[string]string{
		"name":     "demo",
		"template": "https://github.com/acme/ts-template.git",
	})

	msgs := locale.New(locale.DefaultLanguage)
	got, err := answersFromFlags(rootCmd, msgs)
	if err != nil {
		t.Fatalf("answersFromFlags() error = %v", err)
	}

	if got.URLKind != models.URLKindHTTPS {
		t.Errorf("URLKind = %q, want %q", got.URLKind, models.URLKindHTTPS)
	}
	if got.PackageName != "demo" {
		t.Errorf("PackageName = %q, want project name", got.PackageName)
	}
	if got.License != "ISC" {
		t.Errorf("License = %q, want ISC", got.License)
	}
	if got.MainBranch != "main" {
		t.Errorf("MainBranch = %q, want main", got.MainBranch)
	}
	if got.NewRepoURL != "" {
		t.Errorf("NewRepoURL = %q, want empty", got.NewRepoURL)
	}
	if got.Keywords != nil {
		t.Errorf("Keywords = %v, want nil", got.Keywords)
	}
	if msgs.Language() != locale.English {
		t.Errorf("Language() = %q, want %q", msgs.Language(), locale.English)
	}
}

func TestAnswersFromFlagsRejectsInvalidValues(t *testing.T) {
	valid := map[string]string{
		"name":     "demo",
		"template": "https://github.com/acme/ts-template.git",
	}

	tests := []struct {
		name    string
		flags   map[string]string
		wantMsg string
	}{
		{
			name:    "unsupported_language",
			flags:   map[string]string{"lang": "ja"},
			wantMsg: "--lang",
		},
		{
			name:    "unknown_url_kind",
			flags:   map[string]string{"kind": "ftp"},
			wantMsg: "--kind",
		},
		{
			name:    "project_name_with_spaces",
			flags:   map[string]string{"name": "my project"},
			wantMsg: "--name",
		},
		{
			name:    "empty_project_name",
			flags:   map[string]string{"name": ""},
			wantMsg: "--name",
		},
		{
			name:    "template_host_mismatch",
			flags:   map[string]string{"template": "https://gitlab.com/acme/ts-template.git"},
			wantMsg: "--template",
		},
		{
			name:    "ssh_template_under_https_kind",
			flags:   map[string]string{"template": "git@github.com:acme/ts-template.git"},
			wantMsg: "--template",
		},
		{
			name:    "malformed_remote",
			flags:   map[string]string{"remote": "not a url"},
			wantMsg: "--remote",
		},
		{
			name:    "unsupported_main_branch",
			flags:   map[string]string{"main-branch": "trunk"},
			wantMsg: "--main-branch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			setFlags(t, valid)
			setFlags(t, tt.flags)

			_, err := answersFromFlags(rootCmd, locale.New(locale.DefaultLanguage))
			if err == nil {
				t.Fatal("answersFromFlags() error = nil, want flag error")
			}
			var fe *flagError
			if !errors.As(err, &fe) {
				t.Fatalf("answersFromFlags() error = %T, want *flagError", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestAnswersFromFlagsLocalizesValidation(t *testing.T) {
	resetFlags(t)
	setFlags(t, map[string]string{
		"lang": "pt",
		"name": "bad name",
	})

	msgs := locale.New(locale.DefaultLanguage)
	_, err := answersFromFlags(rootCmd, msgs)
	if err == nil {
		t.Fatal("answersFromFlags() error = nil, want flag error")
	}
	if !strings.Contains(err.Error(), "O nome do projeto") {
		t.Errorf("error %q is not localized to Portuguese", err.Error())
	}
}
