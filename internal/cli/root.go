// Package cli defines the udev command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/universal-dev-env/udev/internal/logging"
)

// Version tags cache entries; bumping it invalidates every cached download.
const Version = "1.2.0"

var (
	verbose  bool
	useCache bool
	noCache  bool

	logger *zap.Logger
)

// cacheEnabled resolves the --cache / --no-cache pair.
func cacheEnabled() bool {
	return useCache && !noCache
}

var rootCmd = &cobra.Command{
	Use:   "udev",
	Short: "Scaffold developer environments",
	Long: `udev generates developer-environment boilerplate from a few choices:
project type, backend and feature flags. It derives a container and
deployment strategy from those choices and writes Dockerfiles, devcontainer
configs, compose files, env files and AI-context documents accordingly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&useCache, "cache", true, "use the download cache")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "bypass the download cache")
	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
