package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/universal-dev-env/udev/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and clean the download cache",
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List cache entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cache.Open(Version)
		if err != nil {
			return err
		}
		entries, err := c.Entries()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("Cache is empty.")
			return nil
		}
		for _, e := range entries {
			state := color.GreenString("fresh")
			if e.Stale {
				state = color.YellowString("stale")
			}
			fmt.Printf("  %s  %s  %6d bytes  %s\n", e.Key[:8], state, e.Size, e.Meta.URL)
		}
		return nil
	},
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove stale cache entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cache.Open(Version)
		if err != nil {
			return err
		}
		removed, err := c.Clean()
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d stale entries.\n", removed)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatusCmd, cacheCleanCmd)
	rootCmd.AddCommand(cacheCmd)
}
