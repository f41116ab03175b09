package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/universal-dev-env/udev/internal/cache"
	"github.com/universal-dev-env/udev/internal/fetch"
	"github.com/universal-dev-env/udev/internal/scaffold"
)

var templateFlags struct {
	name   string
	dryRun bool
}

var templateCmd = &cobra.Command{
	Use:   "template <name>",
	Short: "Apply a named remote template",
	Long: `Looks the name up in the template registry, fetches the template and
renders it into a new directory. An unknown name is an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		templateName := args[0]

		fetcher, err := newFetcher()
		if err != nil {
			return err
		}
		entries, err := fetcher.Registry(cmd.Context())
		if err != nil {
			return err
		}

		var entry *fetch.RegistryEntry
		for i := range entries {
			if entries[i].Name == templateName {
				entry = &entries[i]
				break
			}
		}
		if entry == nil {
			return fmt.Errorf("unknown template %q; run 'udev template list' to see available templates", templateName)
		}

		outputDir := templateFlags.name
		if outputDir == "" {
			outputDir = templateName
		}
		if templateFlags.dryRun {
			fmt.Printf("Would apply template %q from %s into %s\n", entry.Name, entry.Source, outputDir)
			return nil
		}

		workDir, err := os.MkdirTemp("", "udev-template")
		if err != nil {
			return err
		}
		defer os.RemoveAll(workDir)

		if err := fetch.Materialize(cmd.Context(), entry.Source, workDir); err != nil {
			return err
		}

		vars := map[string]any{"Name": outputDir}
		if err := scaffold.ApplyTemplate(workDir, vars, outputDir); err != nil {
			return err
		}

		color.Green("Template %q applied to %s.", entry.Name, outputDir)
		return nil
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fetcher, err := newFetcher()
		if err != nil {
			return err
		}
		entries, err := fetcher.Registry(cmd.Context())
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("  %-16s %s\n", e.Name, e.Description)
		}
		return nil
	},
}

func newFetcher() (*fetch.Fetcher, error) {
	c, err := cache.Open(Version)
	if err != nil {
		return nil, err
	}
	opts := []fetch.Option{}
	if !cacheEnabled() {
		opts = append(opts, fetch.WithCacheDisabled())
	}
	return fetch.New(c, logger, opts...), nil
}

func init() {
	templateCmd.Flags().StringVar(&templateFlags.name, "name", "", "output directory (defaults to the template name)")
	templateCmd.Flags().BoolVar(&templateFlags.dryRun, "dry-run", false, "resolve the template without applying it")
	templateCmd.AddCommand(templateListCmd)
	rootCmd.AddCommand(templateCmd)
}
