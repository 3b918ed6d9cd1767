// Package execx runs the external collaborators (git, npm) as child
// processes. Mutating commands inherit the caller's stdio so the user watches
// clone progress and install logs live; read queries capture stdout for the
// pipeline to parse.
package execx

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CommandError reports a failed child process. The top-level error boundary
// recognizes it as an external tool failure.
type CommandError struct {
	Name   string
	Args   []string
	Stderr string
	Err    error
}

// Error includes the full command line, captured stderr when available, and
// the underlying exit error.
func (e *CommandError) Error() string {
	cmdline := strings.Join(append([]string{e.Name}, e.Args...), " ")
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %s: %v", cmdline, e.Stderr, e.Err)
	}
	return fmt.Sprintf("%s: %v", cmdline, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Run executes name with args in dir, wired to the caller's stdin, stdout
// and stderr. The child owns the terminal until it exits; a hang in the tool
// hangs the run. An empty dir runs in the current directory.
func Run(ctx context.Context, dir, name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return &CommandError{Name: name, Args: args, Err: err}
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return &CommandError{Name: name, Args: args, Err: err}
	}
	return nil
}

// Output executes name with args in dir and returns trimmed stdout. extraEnv
// entries are appended to the inherited environment. Stderr is captured and
// carried on the returned CommandError.
func Output(ctx context.Context, dir string, extraEnv []string, name string, args ...string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", &CommandError{Name: name, Args: args, Err: err}
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Name:   name,
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}
