package generator

import (
	"encoding/json"

	"github.com/universal-dev-env/udev/internal/config"
	"github.com/universal-dev-env/udev/internal/strategy"
)

// AgentConfig is the machine-readable project descriptor written to
// .ai-agent-config.json so coding agents can discover the environment shape
// without parsing markdown.
type AgentConfig struct {
	Version         int      `json:"version"`
	ProjectName     string   `json:"projectName"`
	ProjectType     string   `json:"projectType"`
	Backend         string   `json:"backend"`
	Container       string   `json:"containerStrategy"`
	Deployment      string   `json:"deploymentStrategy"`
	InstallLocation string   `json:"installLocation"`
	Environments    []string `json:"environments"`
	Features        []string `json:"features,omitempty"`
	ContextFile     string   `json:"contextFile,omitempty"`
	HandoffFile     string   `json:"handoffFile"`
}

// AgentConfigJSON renders .ai-agent-config.json.
func AgentConfigJSON(cfg config.Config, strat strategy.Strategy) ([]byte, error) {
	features := make([]string, len(cfg.Features))
	for i, f := range cfg.Features {
		features[i] = string(f)
	}

	spec := AgentConfig{
		Version:         1,
		ProjectName:     cfg.ProjectName,
		ProjectType:     string(cfg.ProjectType),
		Backend:         string(cfg.EffectiveBackend()),
		Container:       string(strat.Container),
		Deployment:      string(strat.Deployment),
		InstallLocation: string(strat.Install),
		Environments:    strat.Environments,
		Features:        features,
		HandoffFile:     "SESSION_HANDOFF.md",
	}
	if cfg.AIContext {
		spec.ContextFile = ".ai/context.md"
	}

	out, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
