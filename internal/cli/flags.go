package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PedroSales117/ts-cli-template-maker/internal/cli/wizard"
	"github.com/PedroSales117/ts-cli-template-maker/internal/defs"
	"github.com/PedroSales117/ts-cli-template-maker/internal/locale"
	"github.com/PedroSales117/ts-cli-template-maker/pkg/models"
)

// flagError marks a flag validation failure. reportError prints its
// message verbatim instead of prefixing the generic error line.
type flagError struct {
	msg string
}

func (e *flagError) Error() string {
	return e.msg
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// answersFromFlags builds the answer set for --non-interactive runs. It
// applies the same validation and defaulting rules as the wizard prompts,
// so a scripted run and an interactive run accept exactly the same values.
func answersFromFlags(cmd *cobra.Command, msgs *locale.Messages) (*models.ProjectAnswers, error) {
	if raw := getStringFlag(cmd, "lang"); raw != "" {
		lang, ok := locale.Parse(raw)
		if !ok {
			return nil, &flagError{msg: fmt.Sprintf("invalid --lang value %q: must be one of: en, pt", raw)}
		}
		msgs.SetLanguage(lang)
	}

	kind := models.URLKindHTTPS
	if raw := getStringFlag(cmd, "kind"); raw != "" {
		kind = models.URLKind(raw)
		if !kind.IsValid() {
			return nil, &flagError{msg: fmt.Sprintf("invalid --kind value %q: must be one of: https, ssh", raw)}
		}
	}

	name := strings.TrimSpace(getStringFlag(cmd, "name"))
	if !wizard.ValidProjectName(name) {
		return nil, &flagError{msg: fmt.Sprintf("invalid --name value %q: %s", name, msgs.Get(locale.MsgInvalidProjectName))}
	}

	template := strings.TrimSpace(getStringFlag(cmd, "template"))
	if !wizard.ValidRepoURL(kind, template) {
		return nil, &flagError{msg: fmt.Sprintf("invalid --template value %q: %s", template, msgs.Get(locale.MsgInvalidRepoURL))}
	}

	remote := strings.TrimSpace(getStringFlag(cmd, "remote"))
	if remote != "" && !wizard.ValidRepoURL(kind, remote) {
		return nil, &flagError{msg: fmt.Sprintf("invalid --remote value %q: %s", remote, msgs.Get(locale.MsgInvalidRepoURL))}
	}

	pkg := strings.TrimSpace(getStringFlag(cmd, "package"))
	if pkg == "" {
		pkg = name
	}

	license := strings.TrimSpace(getStringFlag(cmd, "license"))
	if license == "" {
		license = defs.DefaultLicense
	}

	mainBranch := strings.TrimSpace(getStringFlag(cmd, "main-branch"))
	if mainBranch == "" {
		mainBranch = defs.DefaultMainBranch
	} else if !slices.Contains(models.MainBranchNames(), mainBranch) {
		return nil, &flagError{msg: fmt.Sprintf("invalid --main-branch value %q: must be one of: master, main", mainBranch)}
	}

	return &models.ProjectAnswers{
		ProjectName: name,
		URLKind:     kind,
		TemplateURL: template,
		BranchName:  strings.TrimSpace(getStringFlag(cmd, "branch")),
		NewRepoURL:  remote,
		PackageName: pkg,
		Description: strings.TrimSpace(getStringFlag(cmd, "description")),
		Author:      strings.TrimSpace(getStringFlag(cmd, "author")),
		License:     license,
		Keywords:    wizard.SplitKeywords(getStringFlag(cmd, "keywords")),
		MainBranch:  mainBranch,
	}, nil
}
