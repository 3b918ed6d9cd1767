// Package wizard drives the interactive prompt sequence that collects the
// answers for a new project. Each step runs as its own huh form; the language
// chosen in the first step localizes every later prompt through the shared
// locale.Messages handle.
package wizard

import (
	"errors"

	"github.com/PedroSales117/ts-cli-template-maker/internal/locale"
	"github.com/PedroSales117/ts-cli-template-maker/pkg/models"
)

// ErrCancelled is returned when the user cancels the wizard, either with the
// cancel sentinel or a keyboard abort.
var ErrCancelled = errors.New("wizard cancelled by user")

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard step.
type Question struct {
	ID         string                                             // Unique identifier, matches the title's message id.
	Type       QuestionType                                       // Select or Input.
	TitleID    locale.MessageID                                   // Localized title.
	DescID     locale.MessageID                                   // Localized description, empty for none.
	Options    []Option                                           // Options for select questions.
	Default    func(a *models.ProjectAnswers) string              // Initial and blank-fallback value, nil for none.
	Validate   func(a *models.ProjectAnswers, input string) error // Re-prompts on error, nil accepts anything.
	Cancelable bool                                               // Whether the cancel sentinel ends the run.
	Save       func(a *models.ProjectAnswers, value string)
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label.
	Value string // Actual value stored.
}

// Defaults seed the prompts' initial values, typically from the preferences
// file. Zero fields fall back to the built-in defaults.
type Defaults struct {
	Language   locale.Language
	URLKind    models.URLKind
	Author     string
	License    string
	MainBranch string
}
