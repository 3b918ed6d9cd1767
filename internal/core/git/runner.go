// Package git drives the system git binary for the materialization pipeline.
// Mutating commands (clone, checkout, commit, remote changes) inherit the
// caller's stdio so the user watches git's own output; read queries capture
// stdout with a stable environment for parsing.
package git

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/PedroSales117/ts-cli-template-maker/internal/core/execx"
)

// queryEnv keeps captured git output parseable and prompt-free.
var queryEnv = []string{
	"GIT_TERMINAL_PROMPT=0",
	"LC_ALL=C",
}

// Runner executes git operations. All methods take the repository directory
// explicitly; Clone is the only one that runs outside it.
type Runner struct {
	logger *slog.Logger

	run    func(ctx context.Context, dir, name string, args ...string) error
	output func(ctx context.Context, dir string, extraEnv []string, name string, args ...string) (string, error)
}

// NewRunner returns a Runner. A nil logger discards debug output.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		logger: logger.With("module", "git"),
		run:    execx.Run,
		output: execx.Output,
	}
}

// Clone clones url into dir. A non-empty branch restricts the clone to that
// single branch. Runs in the current working directory with inherited stdio,
// so clone progress and any credential prompt reach the user directly.
func (r *Runner) Clone(ctx context.Context, url, dir, branch string) error {
	args := []string{"clone"}
	if branch != "" {
		args = append(args, "--branch", branch, "--single-branch")
	}
	args = append(args, url, dir)

	r.logger.Debug("cloning template", "url", url, "dir", dir, "branch", branch)
	if err := r.run(ctx, "", "git", args...); err != nil {
		return fmt.Errorf("clone %s: %w", url, err)
	}
	return nil
}

// SetRemoteURL repoints the named remote to url.
func (r *Runner) SetRemoteURL(ctx context.Context, dir, name, url string) error {
	r.logger.Debug("setting remote", "remote", name, "url", url)
	if err := r.run(ctx, dir, "git", "remote", "set-url", name, url); err != nil {
		return fmt.Errorf("set remote %s: %w", name, err)
	}
	return nil
}

// CheckoutOrphan creates and switches to an orphan branch with no history.
func (r *Runner) CheckoutOrphan(ctx context.Context, dir, branch string) error {
	r.logger.Debug("creating orphan branch", "branch", branch)
	if err := r.run(ctx, dir, "git", "checkout", "--orphan", branch); err != nil {
		return fmt.Errorf("create orphan branch %q: %w", branch, err)
	}
	return nil
}

// CurrentBranch returns the checked-out branch's short name.
func (r *Runner) CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := r.output(ctx, dir, queryEnv, "git", "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("current branch: %w", err)
	}
	return out, nil
}

// MergedBranches lists local branches already merged into target, short-name
// format, target included.
func (r *Runner) MergedBranches(ctx context.Context, dir, target string) ([]string, error) {
	out, err := r.output(ctx, dir, queryEnv, "git",
		"branch", "--merged", target, "--format=%(refname:short)")
	if err != nil {
		return nil, fmt.Errorf("list merged branches: %w", err)
	}

	var branches []string
	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSpace(line)
		if name != "" {
			branches = append(branches, name)
		}
	}
	r.logger.Debug("merged branches listed", "target", target, "count", len(branches))
	return branches, nil
}

// DeleteBranch force-deletes a local branch.
func (r *Runner) DeleteBranch(ctx context.Context, dir, name string) error {
	r.logger.Debug("deleting branch", "branch", name)
	if err := r.run(ctx, dir, "git", "branch", "-D", name); err != nil {
		return fmt.Errorf("delete branch %q: %w", name, err)
	}
	return nil
}

// CommitAll stages everything and commits with message.
func (r *Runner) CommitAll(ctx context.Context, dir, message string) error {
	r.logger.Debug("committing all changes", "message", message)
	if err := r.run(ctx, dir, "git", "add", "-A"); err != nil {
		return fmt.Errorf("stage changes: %w", err)
	}
	if err := r.run(ctx, dir, "git", "commit", "-m", message); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
