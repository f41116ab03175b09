package cli

import (
	"github.com/spf13/cobra"
)

var setupFlags scaffoldFlags

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Scaffold the environment into the current directory",
	Long: `Like init, but always targets the current directory. Useful for adding
an environment to an existing project; SESSION_HANDOFF.md is never
overwritten if it already exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScaffold(cmd, &setupFlags, ".")
	},
}

func init() {
	addScaffoldFlags(setupCmd, &setupFlags)
	rootCmd.AddCommand(setupCmd)
}
