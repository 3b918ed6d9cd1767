package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/PedroSales117/ts-cli-template-maker/internal/core/manifest"
	"github.com/PedroSales117/ts-cli-template-maker/internal/defs"
	"github.com/PedroSales117/ts-cli-template-maker/internal/locale"
	"github.com/PedroSales117/ts-cli-template-maker/internal/ui"
	"github.com/PedroSales117/ts-cli-template-maker/pkg/models"
)

// Git is the subset of git operations the pipeline drives. The production
// implementation is internal/core/git.Runner; tests substitute a fake that
// records invocations.
type Git interface {
	Clone(ctx context.Context, url, dir, branch string) error
	SetRemoteURL(ctx context.Context, dir, name, url string) error
	CheckoutOrphan(ctx context.Context, dir, branch string) error
	CurrentBranch(ctx context.Context, dir string) (string, error)
	MergedBranches(ctx context.Context, dir, target string) ([]string, error)
	DeleteBranch(ctx context.Context, dir, name string) error
	CommitAll(ctx context.Context, dir, message string) error
}

// Installer installs the project's dependencies. The production implementation
// is internal/core/npm.Installer.
type Installer interface {
	Install(ctx context.Context, dir string) error
}

// Options configures one pipeline run.
type Options struct {
	Answers  models.ProjectAnswers // Wizard answers driving every step.
	WorkDir  string                // Directory the project is created under. Empty means the current directory.
	Messages *locale.Messages      // Localized progress messages. Nil falls back to the default language.
	Out      io.Writer             // Step banners are written here. Nil discards them.
}

// Result summarizes a completed pipeline run.
type Result struct {
	ProjectDir string // Path of the created project directory.
	Branch     string // Branch left checked out.
	Committed  bool   // Whether the scaffold commit was made.
}

// Initializer materializes a project from a template repository.
type Initializer interface {
	// Init runs the pipeline with the given options. Steps are strictly
	// sequential; the first failure abandons the run without rolling back
	// completed steps.
	Init(ctx context.Context, opts Options) (*Result, error)
}

// projectInitializer is the concrete implementation of Initializer.
type projectInitializer struct {
	git       Git
	installer Installer
	logger    *slog.Logger
}

// NewInitializer creates an Initializer with the given collaborators.
func NewInitializer(git Git, installer Installer, logger *slog.Logger) Initializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectInitializer{
		git:       git,
		installer: installer,
		logger:    logger.With("module", "project"),
	}
}

// commitMessageFmt is the scaffold commit message; the argument is the
// project name.
const commitMessageFmt = "chore: scaffold %s from template"

// Init runs the pipeline with the given options.
func (p *projectInitializer) Init(ctx context.Context, opts Options) (*Result, error) {
	answers := opts.Answers
	msgs := opts.Messages
	if msgs == nil {
		msgs = locale.New(locale.DefaultLanguage)
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	projectDir := filepath.Join(opts.WorkDir, answers.ProjectName)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.logger.Info("materializing project",
		"name", answers.ProjectName,
		"template", answers.TemplateURL,
		"dir", projectDir,
	)

	// Step 1: Clone the template into the project directory.
	ui.Step(out, msgs.Get(locale.MsgCreatingProject))
	if err := p.git.Clone(ctx, answers.TemplateURL, projectDir, answers.BranchName); err != nil {
		return nil, err
	}

	// Step 2: Rewrite the manifest. A template without package.json stops the
	// run here.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.rewriteManifest(projectDir, answers); err != nil {
		return nil, err
	}

	// Step 3: Install dependencies.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ui.Step(out, msgs.Get(locale.MsgInstallingDependencies))
	if err := p.installer.Install(ctx, projectDir); err != nil {
		return nil, err
	}

	// Step 4: Repoint origin when a new repository URL was given.
	if answers.NewRepoURL != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ui.Step(out, msgs.Get(locale.MsgSettingRemote))
		if err := p.git.SetRemoteURL(ctx, projectDir, "origin", answers.NewRepoURL); err != nil {
			return nil, err
		}
	}

	// Step 5: Reset history onto the chosen main branch.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ui.Step(out, msgs.Get(locale.MsgCleaningBranches))
	committed, err := p.cleanupBranches(ctx, projectDir, answers)
	if err != nil {
		return nil, err
	}

	ui.Success(out, msgs.Get(locale.MsgProjectReady))

	p.logger.Info("project materialized",
		"dir", projectDir,
		"branch", answers.MainBranch,
	)

	return &Result{
		ProjectDir: projectDir,
		Branch:     answers.MainBranch,
		Committed:  committed,
	}, nil
}

// rewriteManifest loads the template's package.json and rewrites its identity
// fields from the wizard answers.
func (p *projectInitializer) rewriteManifest(dir string, answers models.ProjectAnswers) error {
	doc, err := manifest.Load(filepath.Join(dir, defs.ManifestFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrManifestMissing
		}
		return err
	}

	doc.Apply(manifest.Meta{
		Name:          answers.PackageName,
		Description:   answers.Description,
		Author:        answers.Author,
		License:       answers.License,
		Keywords:      answers.Keywords,
		RepositoryURL: answers.RepositoryURL(),
	})

	return doc.Save()
}

// cleanupBranches replaces the template's history with a single scaffold
// commit on the chosen main branch: commit on an orphan branch (or directly on
// the source branch when its name already matches), delete the source branch,
// then prune every other branch merged into main. The commit precedes the
// merged-branch enumeration because an orphan branch has no ref until its
// first commit.
func (p *projectInitializer) cleanupBranches(ctx context.Context, dir string, answers models.ProjectAnswers) (bool, error) {
	current, err := p.git.CurrentBranch(ctx, dir)
	if err != nil {
		return false, err
	}

	main := answers.MainBranch
	p.logger.Debug("cleaning branches", "current", current, "main", main)

	if current != main {
		if err := p.git.CheckoutOrphan(ctx, dir, main); err != nil {
			return false, err
		}
	}
	if err := p.git.CommitAll(ctx, dir, fmt.Sprintf(commitMessageFmt, answers.ProjectName)); err != nil {
		return false, err
	}
	if current != main {
		if err := p.git.DeleteBranch(ctx, dir, current); err != nil {
			return false, err
		}
	}

	merged, err := p.git.MergedBranches(ctx, dir, main)
	if err != nil {
		return false, err
	}
	for _, name := range merged {
		if name == main {
			continue
		}
		if err := p.git.DeleteBranch(ctx, dir, name); err != nil {
			return false, err
		}
	}

	return true, nil
}
