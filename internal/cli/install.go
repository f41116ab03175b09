package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/universal-dev-env/udev/internal/githook"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the git post-commit hook",
	Long: `Installs the SESSION_HANDOFF.md reminder hook into the current
repository. Any existing post-commit hook is kept as a timestamped
backup.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		installed, err := githook.Install(".")
		if err != nil {
			return err
		}
		if !installed {
			return fmt.Errorf("no .git directory here; run inside a git repository")
		}
		color.Green("post-commit hook installed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
