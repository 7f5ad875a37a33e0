package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradexhq/passport-cli/internal/version"
)

//nolint:gochecknoglobals // Cobra commands require global definitions.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// Version output must work without a configuration file.
	PersistentPreRun: func(_ *cobra.Command, _ []string) {},
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.Full())
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(versionCmd)
}
