// Package strategy derives the container, deployment and tooling choices for
// a project from its configuration. Selection is a pure decision table:
// unknown inputs never error, they fall through to the simplest strategy.
package strategy

import (
	"github.com/universal-dev-env/udev/internal/config"
)

// Container is how the development environment is containerised.
type Container string

const (
	ContainerDevcontainer Container = "devcontainer"
	ContainerDocker       Container = "docker"
	ContainerCompose      Container = "docker-compose"
)

// Deployment is how the generated project is expected to ship.
type Deployment string

const (
	DeployStatic        Deployment = "static"
	DeployContainerized Deployment = "containerized"
	DeployServerless    Deployment = "serverless"
	DeployHybrid        Deployment = "hybrid"
)

// InstallLocation is where developer tooling gets installed.
type InstallLocation string

const (
	InstallHost      InstallLocation = "host"
	InstallContainer InstallLocation = "container"
)

// Tools flags which tool groups the environment should carry.
type Tools struct {
	AICLIs     bool
	CloudCLIs  bool
	HeavyTools bool
}

// Strategy is the derived bundle of environment choices. It is computed once
// from a Config and never mutated.
type Strategy struct {
	Container    Container
	Deployment   Deployment
	Install      InstallLocation
	Tools        Tools
	Environments []string
}

// Select maps a configuration to its strategy. Every (projectType, backend)
// pair resolves to exactly one of the fixed tuples below; anything outside
// the enumerated domain takes the devcontainer/static/host default.
func Select(cfg config.Config) Strategy {
	s := pick(cfg.ProjectType, cfg.EffectiveBackend())

	// AI and cloud CLIs only make sense on the host; inside a container they
	// would be rebuilt on every image change.
	if s.Install == InstallHost {
		s.Tools.AICLIs = cfg.HasFeature(config.FeatureAICLI)
		s.Tools.CloudCLIs = cfg.HasFeature(config.FeatureGCloud) || cfg.HasFeature(config.FeatureGitHubCLI)
	}
	s.Tools.HeavyTools = cfg.IncludeML || s.Deployment == DeployContainerized

	s.Environments = environments(s.Deployment)
	return s
}

func pick(projectType config.ProjectType, backend config.Backend) Strategy {
	switch projectType {
	case config.ProjectReact:
		switch backend {
		case config.BackendExpress:
			return Strategy{Container: ContainerCompose, Deployment: DeployContainerized, Install: InstallContainer}
		case config.BackendNextJS:
			return Strategy{Container: ContainerDocker, Deployment: DeployHybrid, Install: InstallContainer}
		case config.BackendFirebase, config.BackendServerless:
			return Strategy{Container: ContainerDevcontainer, Deployment: DeployServerless, Install: InstallHost}
		default:
			return Strategy{Container: ContainerDevcontainer, Deployment: DeployStatic, Install: InstallHost}
		}
	case config.ProjectPython:
		return Strategy{Container: ContainerDocker, Deployment: DeployContainerized, Install: InstallContainer}
	case config.ProjectFullStack:
		return Strategy{Container: ContainerCompose, Deployment: DeployContainerized, Install: InstallContainer}
	default:
		return Strategy{Container: ContainerDevcontainer, Deployment: DeployStatic, Install: InstallHost}
	}
}

func environments(d Deployment) []string {
	switch d {
	case DeployContainerized, DeployHybrid:
		return []string{"development", "staging", "production"}
	case DeployServerless:
		return []string{"development", "production"}
	default:
		return []string{"development"}
	}
}
