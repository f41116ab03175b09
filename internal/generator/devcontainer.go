package generator

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/universal-dev-env/udev/internal/config"
	"github.com/universal-dev-env/udev/internal/strategy"
)

type devcontainerCustomizations struct {
	VSCode struct {
		Extensions []string `json:"extensions,omitempty"`
	} `json:"vscode"`
}

type devcontainerSpec struct {
	Name              string                      `json:"name"`
	Image             string                      `json:"image,omitempty"`
	DockerFile        string                      `json:"dockerFile,omitempty"`
	ForwardPorts      []int                       `json:"forwardPorts,omitempty"`
	PostCreateCommand string                      `json:"postCreateCommand,omitempty"`
	Features          map[string]map[string]any   `json:"features,omitempty"`
	Customizations    *devcontainerCustomizations `json:"customizations,omitempty"`
	RemoteUser        string                      `json:"remoteUser,omitempty"`
}

// Devcontainer renders .devcontainer/devcontainer.json. Docker-strategy
// projects build from the generated Dockerfile; devcontainer-strategy
// projects reference a stock image directly.
func Devcontainer(cfg config.Config, strat strategy.Strategy) ([]byte, error) {
	spec := devcontainerSpec{
		Name:       cfg.ProjectName,
		RemoteUser: "node",
	}

	switch cfg.ProjectType {
	case config.ProjectPython:
		spec.Image = "mcr.microsoft.com/devcontainers/python:3.11"
		spec.ForwardPorts = []int{8000}
		spec.PostCreateCommand = "pip install -r requirements.txt"
		spec.RemoteUser = "vscode"
	default:
		spec.Image = "mcr.microsoft.com/devcontainers/javascript-node:18"
		spec.ForwardPorts = []int{3000}
		spec.PostCreateCommand = "npm install"
	}

	if strat.Container == strategy.ContainerDocker {
		spec.Image = ""
		spec.DockerFile = "../Dockerfile"
	}

	// Tooling baked into the container only when the strategy asks for it;
	// host installs are handled by the install command instead.
	if strat.Install == strategy.InstallContainer {
		spec.Features = map[string]map[string]any{}
		if cfg.HasFeature(config.FeatureGitHubCLI) {
			spec.Features["ghcr.io/devcontainers/features/github-cli:1"] = map[string]any{}
		}
		if cfg.HasFeature(config.FeatureGCloud) {
			spec.Features["ghcr.io/devcontainers/features/gcloud:1"] = map[string]any{}
		}
		if len(spec.Features) == 0 {
			spec.Features = nil
		}
	}

	if cfg.HasFeature(config.FeatureVSCodeExt) {
		custom := &devcontainerCustomizations{}
		custom.VSCode.Extensions = vscodeExtensions(cfg)
		spec.Customizations = custom
	}

	return json.MarshalIndent(spec, "", "  ")
}

func vscodeExtensions(cfg config.Config) []string {
	extensions := []string{"dbaeumer.vscode-eslint", "esbenp.prettier-vscode"}
	switch cfg.ProjectType {
	case config.ProjectPython:
		extensions = []string{"ms-python.python", "ms-python.vscode-pylance"}
	case config.ProjectReact, config.ProjectFullStack:
		extensions = append(extensions, "dsznajder.es7-react-js-snippets")
	}
	if cfg.HasFeature(config.FeaturePlaywright) {
		extensions = append(extensions, "ms-playwright.playwright")
	}
	return extensions
}

// sanitizeIdentifier lowers a project name into something safe for database
// names and similar identifiers.
func sanitizeIdentifier(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == ' ' || r == '.':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "app"
	}
	return b.String()
}
