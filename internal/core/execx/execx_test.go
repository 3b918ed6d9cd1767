package execx

import (
	"errors"
	"strings"
	"testing"
)

func TestCommandErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *CommandError
		want []string
	}{
		{
			name: "with_stderr",
			err: &CommandError{
				Name:   "git",
				Args:   []string{"clone", "https://example.com/x.git"},
				Stderr: "fatal: repository not found",
				Err:    errors.New("exit status 128"),
			},
			want: []string{"git clone https://example.com/x.git", "fatal: repository not found", "exit status 128"},
		},
		{
			name: "without_stderr",
			err: &CommandError{
				Name: "npm",
				Args: []string{"install"},
				Err:  errors.New("exit status 1"),
			},
			want: []string{"npm install", "exit status 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, part := range tt.want {
				if !strings.Contains(msg, part) {
					t.Errorf("Error() = %q, missing %q", msg, part)
				}
			}
		})
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	inner := errors.New("exit status 2")
	err := &CommandError{Name: "git", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to reach the wrapped exit error")
	}

	var cmdErr *CommandError
	var wrapped error = err
	if !errors.As(wrapped, &cmdErr) {
		t.Fatal("expected errors.As to recover *CommandError")
	}
	if cmdErr.Name != "git" {
		t.Errorf("recovered Name = %q, want %q", cmdErr.Name, "git")
	}
}
