package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PedroSales117/ts-cli-template-maker/pkg/version"
)

// versionCmd prints the full version string including build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ts-cli-template-maker %s\n", version.GetFullVersion())
	},
}
