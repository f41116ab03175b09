package cli

import (
	"github.com/spf13/cobra"
)

var initFlags scaffoldFlags

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new project",
	Long: `Prompts for any options not given as flags, derives the environment
strategy and scaffolds the project into a directory named after it
(or the current directory with --here).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir := ""
		if initFlags.here {
			outputDir = "."
		}
		return runScaffold(cmd, &initFlags, outputDir)
	},
}

func init() {
	addScaffoldFlags(initCmd, &initFlags)
	rootCmd.AddCommand(initCmd)
}
