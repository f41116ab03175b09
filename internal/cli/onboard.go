package cli

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/universal-dev-env/udev/internal/config"
	"github.com/universal-dev-env/udev/internal/fsutil"
	"github.com/universal-dev-env/udev/internal/generator"
	"github.com/universal-dev-env/udev/internal/strategy"
)

var onboardFlags struct {
	projectType string
	backend     string
}

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Add AI agent context files to an existing project",
	Long: `Writes .ai/context.md, .ai-agent-config.json, AI_AGENT_ONBOARDING.md and
SESSION_HANDOFF.md into the current directory. An existing
SESSION_HANDOFF.md is never touched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}

		cfg := config.Config{
			ProjectName: filepath.Base(wd),
			ProjectType: config.ProjectType(onboardFlags.projectType),
			Backend:     config.Backend(onboardFlags.backend),
			AIContext:   true,
		}
		strat := strategy.Select(cfg)

		aiContext, err := generator.AIContext(cfg, strat)
		if err != nil {
			return err
		}
		onboarding, err := generator.Onboarding(cfg, strat)
		if err != nil {
			return err
		}
		agentConfig, err := generator.AgentConfigJSON(cfg, strat)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(".ai", 0o755); err != nil {
			return err
		}
		writes := map[string][]byte{
			filepath.Join(".ai", "context.md"): []byte(aiContext),
			"AI_AGENT_ONBOARDING.md":           []byte(onboarding),
			".ai-agent-config.json":            agentConfig,
		}
		for name, data := range writes {
			if err := fsutil.WriteFileAtomic(name, data, 0o644); err != nil {
				return err
			}
		}

		if !fsutil.Exists("SESSION_HANDOFF.md") {
			handoff, err := generator.SessionHandoff(cfg, strat)
			if err != nil {
				return err
			}
			if err := fsutil.WriteFileAtomic("SESSION_HANDOFF.md", []byte(handoff), 0o644); err != nil {
				return err
			}
		}

		color.Green("AI agent context written for %q.", cfg.ProjectName)
		return nil
	},
}

func init() {
	onboardCmd.Flags().StringVar(&onboardFlags.projectType, "type", "", "project type hint for the context files")
	onboardCmd.Flags().StringVar(&onboardFlags.backend, "backend", "", "backend hint for the context files")
	rootCmd.AddCommand(onboardCmd)
}
