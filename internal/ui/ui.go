// Package ui renders the tool's own output: step banners between the
// external commands, final status lines, and the post-success next-steps
// block. Child processes write straight to the terminal; everything here
// frames their output.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"}).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}).Padding(0, 2)
	stepStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
)

// Banner prints the application title box shown before the wizard starts.
func Banner(w io.Writer, version string) {
	fmt.Fprintln(w, bannerStyle.Render("ts-cli-template-maker "+version))
}

// Step prints a pipeline step banner.
func Step(w io.Writer, text string) {
	fmt.Fprintln(w, stepStyle.Render(text))
}

// Success prints a final success line.
func Success(w io.Writer, text string) {
	fmt.Fprintln(w, successStyle.Render(text))
}

// Error prints a user-facing error line.
func Error(w io.Writer, text string) {
	fmt.Fprintln(w, errorStyle.Render(text))
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NextSteps renders the markdown block shown after a successful run. Without
// a terminal on stdout, or when rendering fails, the raw markdown is printed
// as-is.
func NextSteps(w io.Writer, markdown string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(w, markdown)
		return
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(78),
	)
	if err != nil {
		fmt.Fprintln(w, markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Fprintln(w, markdown)
		return
	}
	fmt.Fprint(w, out)
}
