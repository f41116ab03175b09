package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/universal-dev-env/udev/internal/config"
	"github.com/universal-dev-env/udev/internal/scaffold"
)

// scaffoldFlags are the options shared by init and setup.
type scaffoldFlags struct {
	name        string
	projectType string
	backend     string
	features    []string
	ml          bool
	aiContext   bool
	skipPrompts bool
	dryRun      bool
	here        bool
}

func addScaffoldFlags(cmd *cobra.Command, f *scaffoldFlags) {
	cmd.Flags().StringVar(&f.name, "name", "", "project name")
	cmd.Flags().StringVar(&f.projectType, "type", "", "project type (react|node|python|full-stack|custom)")
	cmd.Flags().StringVar(&f.backend, "backend", "", "backend (none|express|nextjs|firebase|serverless)")
	cmd.Flags().StringSliceVar(&f.features, "feature", nil, "feature flags (repeatable)")
	cmd.Flags().BoolVar(&f.ml, "ml", false, "include machine-learning tooling")
	cmd.Flags().BoolVar(&f.aiContext, "ai-context", false, "generate AI context and agent config files")
	cmd.Flags().BoolVar(&f.skipPrompts, "skip-prompts", false, "never prompt; missing values take defaults")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "print what would be generated without writing")
	cmd.Flags().BoolVar(&f.here, "here", false, "scaffold into the current directory")
}

// buildConfig assembles the Config from flags, overrides and (unless
// suppressed) interactive prompts.
func (f *scaffoldFlags) buildConfig() (config.Config, error) {
	cfg := config.Config{
		ProjectName: f.name,
		ProjectType: config.ProjectType(f.projectType),
		Backend:     config.Backend(f.backend),
		IncludeML:   f.ml,
		AIContext:   f.aiContext,
	}

	features, err := config.ParseFeatures(f.features)
	if err != nil {
		return config.Config{}, err
	}
	cfg.Features = features

	overrides, err := config.ReadOverrides(config.OverrideFile)
	if err != nil {
		return config.Config{}, err
	}

	if f.skipPrompts {
		applyDefaults(&cfg, overrides)
	} else if err := config.PromptMissing(&cfg, overrides); err != nil {
		return config.Config{}, err
	}

	return cfg, cfg.Validate()
}

// applyDefaults fills unset fields without prompting: overrides win, then
// the node/devcontainer defaults.
func applyDefaults(cfg *config.Config, overrides config.Overrides) {
	if cfg.ProjectName == "" {
		if v, ok := overrides["name"]; ok {
			cfg.ProjectName = v
		} else if wd, err := os.Getwd(); err == nil {
			cfg.ProjectName = filepath.Base(wd)
		}
	}
	if cfg.ProjectType == "" {
		if v, ok := overrides["type"]; ok {
			cfg.ProjectType = config.ProjectType(v)
		} else {
			cfg.ProjectType = config.ProjectNode
		}
	}
	if cfg.Backend == "" {
		if v, ok := overrides["backend"]; ok {
			cfg.Backend = config.Backend(v)
		}
	}
}

// runScaffold executes a configured scaffold and prints the outcome.
func runScaffold(cmd *cobra.Command, f *scaffoldFlags, outputDir string) error {
	cfg, err := f.buildConfig()
	if err != nil {
		return err
	}

	opts := []scaffold.Option{scaffold.WithLogger(logger), scaffold.WithGitHook()}
	if outputDir != "" {
		opts = append(opts, scaffold.WithOutputDir(outputDir))
	}
	if f.dryRun {
		opts = append(opts, scaffold.WithDryRun())
	}

	result, err := scaffold.New(opts...).Setup(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if f.dryRun {
		fmt.Println("Would generate:")
		for _, p := range result.Written {
			fmt.Printf("  %s\n", p)
		}
		return nil
	}

	for _, p := range result.Written {
		fmt.Printf("  %s %s\n", color.GreenString("create"), p)
	}
	for _, p := range result.Skipped {
		fmt.Printf("  %s %s\n", color.YellowString("keep"), p)
	}
	color.Green("\nProject %q ready (%s/%s).", cfg.ProjectName, result.Strategy.Container, result.Strategy.Deployment)
	return nil
}
