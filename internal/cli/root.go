package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/PedroSales117/ts-cli-template-maker/internal/cli/wizard"
	"github.com/PedroSales117/ts-cli-template-maker/internal/config"
	"github.com/PedroSales117/ts-cli-template-maker/internal/core/execx"
	"github.com/PedroSales117/ts-cli-template-maker/internal/core/project"
	"github.com/PedroSales117/ts-cli-template-maker/internal/locale"
	"github.com/PedroSales117/ts-cli-template-maker/internal/ui"
	"github.com/PedroSales117/ts-cli-template-maker/pkg/models"
	"github.com/PedroSales117/ts-cli-template-maker/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "tsmaker",
	Short: "Scaffold a TypeScript project from a template repository",
	Long: `tsmaker clones a TypeScript template repository, rewrites its
package.json for the new project, installs dependencies, repoints the git
remote and resets the branch history, so the result looks like a freshly
created repository instead of a fork of the template.

Run it without flags for the interactive wizard, or pass --non-interactive
and the flags below to script it.`,
	Version:           version.GetVersion(),
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: wireDependencies,
	RunE:              runRoot,
}

// Execute runs the root command. Errors have already been printed by
// runRoot; the caller only turns a non-nil return into the exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("ts-cli-template-maker %s\n", version.GetVersion()))

	rootCmd.Flags().String("lang", "", "Output language: en or pt (default: en)")
	rootCmd.Flags().String("name", "", "Project name, also the target directory")
	rootCmd.Flags().String("kind", "", "Repository URL kind: https or ssh (default: https)")
	rootCmd.Flags().String("template", "", "Template repository URL to clone")
	rootCmd.Flags().String("branch", "", "Template branch to clone (default: the template's default branch)")
	rootCmd.Flags().String("remote", "", "New repository URL to set as origin (default: keep the template remote)")
	rootCmd.Flags().String("package", "", "Package name for package.json (default: project name)")
	rootCmd.Flags().String("description", "", "Project description")
	rootCmd.Flags().String("author", "", "Author written into package.json")
	rootCmd.Flags().String("license", "", "License identifier (default: ISC)")
	rootCmd.Flags().String("keywords", "", "Comma-separated keywords")
	rootCmd.Flags().String("main-branch", "", "Main branch name: master or main (default: main)")
	rootCmd.Flags().Bool("non-interactive", false, "Skip the wizard; answers come from flags")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log internal steps to stderr")

	rootCmd.AddCommand(versionCmd)
}

// wireDependencies builds the composition root once flags are parsed, so
// the logger can honor --verbose. Tests inject fakes through SetDeps.
func wireDependencies(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		InitDependencies(getBoolFlag(cmd, "verbose"))
	}
	return nil
}

// runRoot collects the answer set (wizard or flags), materializes the
// project and prints the next-steps note. Every failure funnels through
// reportError so the user always sees a localized line; cobra's own error
// printing is silenced.
func runRoot(cmd *cobra.Command, _ []string) error {
	msgs := locale.New(locale.DefaultLanguage)

	answers, err := collectAnswers(cmd, msgs)
	if err != nil {
		return reportError(cmd.ErrOrStderr(), msgs, err)
	}

	out := cmd.OutOrStdout()
	res, err := deps.Initializer.Init(cmd.Context(), project.Options{
		Answers:  *answers,
		Messages: msgs,
		Out:      out,
	})
	if err != nil {
		return reportError(cmd.ErrOrStderr(), msgs, err)
	}

	ui.NextSteps(out, msgs.Getf(locale.MsgNextSteps, answers.ProjectName, res.ProjectDir, res.Branch))
	return nil
}

// collectAnswers returns the full answer set, either from flags
// (--non-interactive) or from the wizard seeded with saved preferences.
func collectAnswers(cmd *cobra.Command, msgs *locale.Messages) (*models.ProjectAnswers, error) {
	if getBoolFlag(cmd, "non-interactive") {
		return answersFromFlags(cmd, msgs)
	}

	if !ui.IsInteractive() {
		return nil, &flagError{msg: "stdin is not a terminal; pass --non-interactive and the answer flags"}
	}

	defaults := wizard.Defaults{}
	if path, err := config.Path(); err == nil {
		pref := config.Load(path, deps.Logger)
		if lang, ok := locale.Parse(pref.Language); ok {
			defaults.Language = lang
			msgs.SetLanguage(lang)
		}
		defaults.URLKind = models.URLKind(pref.URLKind)
		defaults.Author = pref.Author
		defaults.License = pref.License
		defaults.MainBranch = pref.MainBranch
	}

	ui.Banner(cmd.OutOrStdout(), version.GetVersion())
	return wizard.Run(msgs, defaults)
}

// reportError prints one localized line for err and decides the exit
// status. Cancellation is not a failure: the notice goes out and the
// return is nil. Everything else keeps err so main exits non-zero.
func reportError(w io.Writer, msgs *locale.Messages, err error) error {
	var flagErr *flagError
	var cmdErr *execx.CommandError
	switch {
	case errors.Is(err, wizard.ErrCancelled):
		_, _ = fmt.Fprintln(w, msgs.Get(locale.MsgOperationCanceled))
		return nil
	case errors.Is(err, project.ErrManifestMissing):
		ui.Error(w, msgs.Get(locale.MsgManifestMissing))
		return err
	case errors.As(err, &flagErr):
		ui.Error(w, flagErr.Error())
		return err
	case errors.As(err, &cmdErr):
		ui.Error(w, msgs.Get(locale.MsgGenericError)+": "+err.Error())
		return err
	default:
		ui.Error(w, msgs.Get(locale.MsgUnknownError)+": "+err.Error())
		return err
	}
}
