package wizard

import (
	"errors"
	"strings"

	"github.com/PedroSales117/ts-cli-template-maker/internal/defs"
	"github.com/PedroSales117/ts-cli-template-maker/internal/locale"
	"github.com/PedroSales117/ts-cli-template-maker/pkg/models"
)

// Questions returns the interactive steps in prompt order. msgs is shared
// with the caller: answering the language step switches every later prompt
// and everything the caller prints afterwards.
func Questions(msgs *locale.Messages, defaults Defaults) []Question {
	if defaults.Language == "" {
		defaults.Language = locale.DefaultLanguage
	}
	if defaults.URLKind == "" {
		defaults.URLKind = models.URLKindHTTPS
	}
	if defaults.License == "" {
		defaults.License = defs.DefaultLicense
	}
	if defaults.MainBranch == "" {
		defaults.MainBranch = defs.DefaultMainBranch
	}

	return []Question{
		// 1. Language
		{
			ID:      "select_language",
			Type:    QuestionTypeSelect,
			TitleID: locale.MsgSelectLanguage,
			Options: languageOptions(),
			Default: fixed(defaults.Language.String()),
			Save: func(_ *models.ProjectAnswers, v string) {
				if lang, ok := locale.Parse(v); ok {
					msgs.SetLanguage(lang)
				}
			},
		},
		// 2. Repository URL kind, governs URL validation for the rest of the run
		{
			ID:      "repo_url_kind",
			Type:    QuestionTypeSelect,
			TitleID: locale.MsgRepoURLKind,
			Options: []Option{
				{Label: "https", Value: string(models.URLKindHTTPS)},
				{Label: "ssh", Value: string(models.URLKindSSH)},
			},
			Default: fixed(string(defaults.URLKind)),
			Save: func(a *models.ProjectAnswers, v string) {
				a.URLKind = models.URLKind(v)
			},
		},
		// 3. Project name
		{
			ID:         "project_name",
			Type:       QuestionTypeInput,
			TitleID:    locale.MsgProjectName,
			DescID:     locale.MsgCancelHint,
			Cancelable: true,
			Validate: func(_ *models.ProjectAnswers, input string) error {
				input = strings.TrimSpace(input)
				if IsCancel(input) {
					return nil
				}
				if !ValidProjectName(input) {
					return errors.New(msgs.Get(locale.MsgInvalidProjectName))
				}
				return nil
			},
			Save: func(a *models.ProjectAnswers, v string) {
				a.ProjectName = v
			},
		},
		// 4. Template repository URL, validated against the chosen kind
		{
			ID:         "template_repo_url",
			Type:       QuestionTypeInput,
			TitleID:    locale.MsgTemplateRepoURL,
			DescID:     locale.MsgCancelHint,
			Cancelable: true,
			Validate: func(a *models.ProjectAnswers, input string) error {
				input = strings.TrimSpace(input)
				if IsCancel(input) {
					return nil
				}
				if !ValidRepoURL(a.URLKind, input) {
					return errors.New(msgs.Get(locale.MsgInvalidRepoURL))
				}
				return nil
			},
			Save: func(a *models.ProjectAnswers, v string) {
				a.TemplateURL = v
			},
		},
		// 5. Branch to clone, blank means the template's default branch
		{
			ID:      "branch_name",
			Type:    QuestionTypeInput,
			TitleID: locale.MsgBranchName,
			Save: func(a *models.ProjectAnswers, v string) {
				a.BranchName = v
			},
		},
		// 6. New repository URL, blank keeps the template remote
		{
			ID:         "new_repo_url",
			Type:       QuestionTypeInput,
			TitleID:    locale.MsgNewRepoURL,
			DescID:     locale.MsgCancelHint,
			Cancelable: true,
			Validate: func(a *models.ProjectAnswers, input string) error {
				input = strings.TrimSpace(input)
				if input == "" || IsCancel(input) {
					return nil
				}
				if !ValidRepoURL(a.URLKind, input) {
					return errors.New(msgs.Get(locale.MsgInvalidRepoURL))
				}
				return nil
			},
			Save: func(a *models.ProjectAnswers, v string) {
				a.NewRepoURL = v
			},
		},
		// 7. Package name, defaults to the project name
		{
			ID:      "package_name",
			Type:    QuestionTypeInput,
			TitleID: locale.MsgPackageName,
			Default: func(a *models.ProjectAnswers) string {
				return a.ProjectName
			},
			Save: func(a *models.ProjectAnswers, v string) {
				a.PackageName = v
			},
		},
		// 8. Description
		{
			ID:      "description",
			Type:    QuestionTypeInput,
			TitleID: locale.MsgDescription,
			Save: func(a *models.ProjectAnswers, v string) {
				a.Description = v
			},
		},
		// 9. Author
		{
			ID:      "author",
			Type:    QuestionTypeInput,
			TitleID: locale.MsgAuthor,
			Default: fixed(defaults.Author),
			Save: func(a *models.ProjectAnswers, v string) {
				a.Author = v
			},
		},
		// 10. License
		{
			ID:      "license",
			Type:    QuestionTypeInput,
			TitleID: locale.MsgLicense,
			Default: fixed(defaults.License),
			Save: func(a *models.ProjectAnswers, v string) {
				a.License = v
			},
		},
		// 11. Keywords, comma separated
		{
			ID:      "keywords",
			Type:    QuestionTypeInput,
			TitleID: locale.MsgKeywords,
			Save: func(a *models.ProjectAnswers, v string) {
				a.Keywords = SplitKeywords(v)
			},
		},
		// 12. Main branch name
		{
			ID:      "main_branch_name",
			Type:    QuestionTypeSelect,
			TitleID: locale.MsgMainBranchName,
			Options: mainBranchOptions(),
			Default: fixed(defaults.MainBranch),
			Save: func(a *models.ProjectAnswers, v string) {
				a.MainBranch = v
			},
		},
	}
}

// fixed returns a Default func that ignores the answers collected so far.
func fixed(v string) func(*models.ProjectAnswers) string {
	return func(*models.ProjectAnswers) string { return v }
}

// languageOptions lists the supported languages under their self-names.
func languageOptions() []Option {
	langs := locale.Supported()
	opts := make([]Option, len(langs))
	for i, l := range langs {
		opts[i] = Option{Label: l.DisplayName(), Value: l.String()}
	}
	return opts
}

func mainBranchOptions() []Option {
	names := models.MainBranchNames()
	opts := make([]Option, len(names))
	for i, n := range names {
		opts[i] = Option{Label: n, Value: n}
	}
	return opts
}

// QuestionByID finds a question by its ID.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}
