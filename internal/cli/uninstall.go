package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/universal-dev-env/udev/internal/cache"
	"github.com/universal-dev-env/udev/internal/githook"
)

var uninstallFlags struct {
	purgeCache bool
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the git hook and, optionally, the cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		removed, err := githook.Uninstall(".")
		if err != nil {
			return err
		}
		if removed {
			fmt.Println("post-commit hook removed.")
		} else {
			fmt.Println("no hook installed here.")
		}

		if uninstallFlags.purgeCache {
			c, err := cache.Open(Version)
			if err != nil {
				return err
			}
			if err := c.Purge(); err != nil {
				return err
			}
			fmt.Println("download cache removed.")
		}

		color.Green("Done.")
		return nil
	},
}

func init() {
	uninstallCmd.Flags().BoolVar(&uninstallFlags.purgeCache, "purge-cache", false, "also delete ~/.universal-dev-env/cache")
	rootCmd.AddCommand(uninstallCmd)
}
