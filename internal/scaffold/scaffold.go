// Package scaffold orchestrates project generation: it derives the strategy
// for a configuration, stages every generated file in an in-memory
// filesystem, then copies the staged tree to disk. Staging first means a
// generator error never leaves a half-written project behind.
package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"go.uber.org/zap"

	"github.com/universal-dev-env/udev/internal/config"
	"github.com/universal-dev-env/udev/internal/fsutil"
	"github.com/universal-dev-env/udev/internal/generator"
	"github.com/universal-dev-env/udev/internal/githook"
	"github.com/universal-dev-env/udev/internal/strategy"
)

// HandoffFile is never overwritten once it exists in the target directory.
const HandoffFile = "SESSION_HANDOFF.md"

// Scaffolder writes generated projects to disk.
type Scaffolder struct {
	outputDir   string
	dryRun      bool
	installHook bool
	log         *zap.Logger
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithOutputDir scaffolds into the given directory instead of one named
// after the project.
func WithOutputDir(dir string) Option {
	return func(s *Scaffolder) { s.outputDir = dir }
}

// WithDryRun stages everything but writes nothing.
func WithDryRun() Option {
	return func(s *Scaffolder) { s.dryRun = true }
}

// WithGitHook installs the post-commit hook when the target is a git repo.
func WithGitHook() Option {
	return func(s *Scaffolder) { s.installHook = true }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Scaffolder) { s.log = log }
}

// New builds a Scaffolder.
func New(opts ...Option) *Scaffolder {
	s := &Scaffolder{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result reports what a Setup run did (or would do, under dry-run).
type Result struct {
	Strategy      strategy.Strategy
	OutputDir     string
	Written       []string
	Skipped       []string
	HookInstalled bool
}

// Setup scaffolds a project from cfg. The first error aborts the run; there
// is no rollback, matching the tool's one-shot scope.
func (s *Scaffolder) Setup(ctx context.Context, cfg config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	strat := strategy.Select(cfg)
	outputDir := s.outputDir
	if outputDir == "" {
		outputDir = cfg.ProjectName
	}

	staged := memfs.New()
	if err := stage(staged, cfg, strat); err != nil {
		return nil, err
	}

	result := &Result{Strategy: strat, OutputDir: outputDir}

	if s.dryRun {
		result.Written = stagedPaths(staged)
		return result, nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create project directory: %w", err)
	}
	if err := s.flush(staged, outputDir, result); err != nil {
		return nil, err
	}

	if s.installHook {
		installed, err := githook.Install(outputDir)
		if err != nil {
			return nil, err
		}
		result.HookInstalled = installed
	}

	s.log.Info("project scaffolded",
		zap.String("dir", outputDir),
		zap.Int("files", len(result.Written)),
		zap.String("container", string(strat.Container)))
	return result, nil
}

// stage runs every generator for the configuration and writes the output
// into the staging filesystem, handling per-project-type layout.
func stage(staged billy.Filesystem, cfg config.Config, strat strategy.Strategy) error {
	put := func(name, content string) error {
		return stageFile(staged, name, []byte(content))
	}

	switch strat.Container {
	case strategy.ContainerCompose:
		// client/server split with the compose file tying them together
		if err := put(path.Join("client", "Dockerfile"), generator.Dockerfile(cfg, strat)); err != nil {
			return err
		}
		if err := put(path.Join("server", "Dockerfile"), generator.ServerDockerfile(cfg, strat)); err != nil {
			return err
		}
		compose, err := generator.Compose(cfg, strat)
		if err != nil {
			return err
		}
		if err := put("docker-compose.yml", compose); err != nil {
			return err
		}
	case strategy.ContainerDocker:
		if err := put("Dockerfile", generator.Dockerfile(cfg, strat)); err != nil {
			return err
		}
	}

	if strat.Container != strategy.ContainerCompose {
		devcontainer, err := generator.Devcontainer(cfg, strat)
		if err != nil {
			return err
		}
		if err := stageFile(staged, path.Join(".devcontainer", "devcontainer.json"), devcontainer); err != nil {
			return err
		}
	}

	for _, environment := range strat.Environments {
		envFile, err := generator.EnvFile(cfg, strat, environment)
		if err != nil {
			return err
		}
		if err := put(".env."+environment, envFile); err != nil {
			return err
		}
	}

	readme, err := generator.Readme(cfg, strat)
	if err != nil {
		return err
	}
	if err := put("README.md", readme); err != nil {
		return err
	}
	if err := put(".gitignore", generator.Gitignore(cfg)); err != nil {
		return err
	}

	handoff, err := generator.SessionHandoff(cfg, strat)
	if err != nil {
		return err
	}
	if err := put(HandoffFile, handoff); err != nil {
		return err
	}

	if cfg.AIContext {
		aiContext, err := generator.AIContext(cfg, strat)
		if err != nil {
			return err
		}
		if err := put(path.Join(".ai", "context.md"), aiContext); err != nil {
			return err
		}
		onboarding, err := generator.Onboarding(cfg, strat)
		if err != nil {
			return err
		}
		if err := put("AI_AGENT_ONBOARDING.md", onboarding); err != nil {
			return err
		}
		agentConfig, err := generator.AgentConfigJSON(cfg, strat)
		if err != nil {
			return err
		}
		if err := stageFile(staged, ".ai-agent-config.json", agentConfig); err != nil {
			return err
		}
	}

	return nil
}

func stageFile(staged billy.Filesystem, name string, data []byte) error {
	if dir := path.Dir(name); dir != "." {
		if err := staged.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := staged.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = file.Write(data)
	return err
}

// flush copies the staged tree to disk. SESSION_HANDOFF.md is left alone
// when it already exists so re-runs never clobber session state.
func (s *Scaffolder) flush(staged billy.Filesystem, outputDir string, result *Result) error {
	return Walk(staged, "/", func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(p, "/")
		target := filepath.Join(outputDir, filepath.FromSlash(rel))

		if info.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		if rel == HandoffFile && fsutil.Exists(target) {
			s.log.Debug("keeping existing file", zap.String("file", rel))
			result.Skipped = append(result.Skipped, rel)
			return nil
		}

		file, err := staged.Open(p)
		if err != nil {
			return err
		}
		data, readErr := io.ReadAll(file)
		file.Close()
		if readErr != nil {
			return readErr
		}

		if err := fsutil.WriteFileAtomic(target, data, 0o644); err != nil {
			return fmt.Errorf("cannot write %s: %w", rel, err)
		}
		result.Written = append(result.Written, rel)
		return nil
	})
}

func stagedPaths(staged billy.Filesystem) []string {
	var paths []string
	Walk(staged, "/", func(p string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			paths = append(paths, strings.TrimPrefix(p, "/"))
		}
		return nil
	})
	sort.Strings(paths)
	return paths
}
