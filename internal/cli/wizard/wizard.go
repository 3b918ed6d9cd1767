package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/PedroSales117/ts-cli-template-maker/internal/locale"
	"github.com/PedroSales117/ts-cli-template-maker/pkg/models"
)

// Dark-mode palette for the wizard theme. Light variants are inlined where
// the theme is built.
const (
	colorPrimary   = "#DA7756"
	colorSecondary = "#7C3AED"
	colorSuccess   = "#10B981"
	colorError     = "#EF4444"
	colorText      = "#F9FAFB"
	colorMuted     = "#6B7280"
	colorBorder    = "#374151"
)

// Run executes the wizard and returns the collected answers. Cancellation,
// through the cancel sentinel or a keyboard abort, is reported as
// ErrCancelled. Each question runs as its own independent huh.Form to avoid
// the huh v0.8.x YOffset scroll bug that occurs when multiple groups share a
// single viewport.
func Run(msgs *locale.Messages, defaults Defaults) (*models.ProjectAnswers, error) {
	return run(msgs, Questions(msgs, defaults))
}

func run(msgs *locale.Messages, questions []Question) (*models.ProjectAnswers, error) {
	answers := &models.ProjectAnswers{}
	lang := msgs.Language().String()
	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]

		def := ""
		if q.Default != nil {
			def = q.Default(answers)
		}

		var value string
		var field huh.Field
		switch q.Type {
		case QuestionTypeSelect:
			field = buildSelectField(q, msgs, &lang, def, &value)
		case QuestionTypeInput:
			field = buildInputField(q, msgs, &lang, answers, def, &value)
		}

		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("prompt %s: %w", q.ID, err)
		}

		if resolve(q, answers, def, value) {
			return nil, ErrCancelled
		}
		lang = msgs.Language().String()
	}

	return answers, nil
}

// resolve applies the post-prompt rules shared by every question: sentinel
// recognition on cancelable steps, blank-to-default fallback, and answer
// storage. It reports whether the run was cancelled.
func resolve(q *Question, answers *models.ProjectAnswers, def, raw string) bool {
	v := strings.TrimSpace(raw)
	if q.Cancelable && IsCancel(v) {
		return true
	}
	if v == "" {
		v = def
	}
	q.Save(answers, v)
	return false
}

// buildSelectField creates a huh.Select for a select-type question. Static
// Options with no explicit Height keep huh v0.8.x from resetting the viewport
// offset; OptionsFunc would force a fixed height and scroll the selected item
// to the top.
func buildSelectField(q *Question, msgs *locale.Messages, lang *string, def string, value *string) *huh.Select[string] {
	*value = def

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		opts[i] = huh.NewOption(opt.Label, opt.Value)
	}

	sel := huh.NewSelect[string]().
		TitleFunc(func() string {
			return msgs.Get(q.TitleID)
		}, lang).
		Options(opts...).
		Value(value)

	if q.DescID != "" {
		sel = sel.DescriptionFunc(func() string {
			return msgs.Get(q.DescID)
		}, lang)
	}

	return sel
}

// buildInputField creates a huh.Input for an input-type question.
func buildInputField(q *Question, msgs *locale.Messages, lang *string, answers *models.ProjectAnswers, def string, value *string) *huh.Input {
	*value = def

	inp := huh.NewInput().
		TitleFunc(func() string {
			return msgs.Get(q.TitleID)
		}, lang).
		Value(value)

	if q.DescID != "" {
		inp = inp.DescriptionFunc(func() string {
			return msgs.Get(q.DescID)
		}, lang)
	}
	if def != "" {
		inp = inp.Placeholder(def)
	}
	if q.Validate != nil {
		validate := q.Validate
		inp = inp.Validate(func(input string) error {
			return validate(answers, input)
		})
	}

	return inp
}

// newWizardTheme maps the CLI brand colors onto a huh theme.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: colorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: colorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: colorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: colorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: colorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: colorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: colorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(primary).Bold(true).MarginBottom(1)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.NextIndicator = t.Focused.NextIndicator.Foreground(primary)
	t.Focused.PrevIndicator = t.Focused.PrevIndicator.Foreground(primary)
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
