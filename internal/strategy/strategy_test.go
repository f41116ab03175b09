package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/universal-dev-env/udev/internal/config"
)

// Every (projectType, backend) pair in the enumerated domain must resolve to
// exactly one of the fixed tuples.
func TestSelect_ExhaustiveTable(t *testing.T) {
	type tuple struct {
		container Container
		deploy    Deployment
		install   InstallLocation
	}

	fallback := tuple{ContainerDevcontainer, DeployStatic, InstallHost}

	expected := map[config.ProjectType]map[config.Backend]tuple{
		config.ProjectReact: {
			config.BackendNone:       fallback,
			config.BackendExpress:    {ContainerCompose, DeployContainerized, InstallContainer},
			config.BackendNextJS:     {ContainerDocker, DeployHybrid, InstallContainer},
			config.BackendFirebase:   {ContainerDevcontainer, DeployServerless, InstallHost},
			config.BackendServerless: {ContainerDevcontainer, DeployServerless, InstallHost},
		},
	}

	for _, projectType := range config.ProjectTypes() {
		for _, backend := range config.Backends() {
			want, ok := expected[projectType][backend]
			if !ok {
				switch projectType {
				case config.ProjectPython:
					want = tuple{ContainerDocker, DeployContainerized, InstallContainer}
				case config.ProjectFullStack:
					want = tuple{ContainerCompose, DeployContainerized, InstallContainer}
				default:
					want = fallback
				}
			}

			got := Select(config.Config{ProjectType: projectType, Backend: backend})
			assert.Equal(t, want.container, got.Container, "%s/%s container", projectType, backend)
			assert.Equal(t, want.deploy, got.Deployment, "%s/%s deployment", projectType, backend)
			assert.Equal(t, want.install, got.Install, "%s/%s install", projectType, backend)
		}
	}
}

func TestSelect_UnknownTypeFallsBack(t *testing.T) {
	for _, cfg := range []config.Config{
		{ProjectType: "elm"},
		{ProjectType: ""},
		{ProjectType: "react", Backend: "graphql"},
	} {
		got := Select(cfg)
		assert.Equal(t, ContainerDevcontainer, got.Container)
		assert.Equal(t, DeployStatic, got.Deployment)
		assert.Equal(t, InstallHost, got.Install)
	}
}

func TestSelect_ToolFlags(t *testing.T) {
	t.Run("ai and cloud clis only on host", func(t *testing.T) {
		host := Select(config.Config{
			ProjectType: config.ProjectNode,
			Features:    []config.Feature{config.FeatureAICLI, config.FeatureGCloud},
		})
		assert.True(t, host.Tools.AICLIs)
		assert.True(t, host.Tools.CloudCLIs)

		container := Select(config.Config{
			ProjectType: config.ProjectPython,
			Features:    []config.Feature{config.FeatureAICLI, config.FeatureGCloud},
		})
		assert.False(t, container.Tools.AICLIs)
		assert.False(t, container.Tools.CloudCLIs)
	})

	t.Run("heavy tools follow ml and containerized deploys", func(t *testing.T) {
		assert.True(t, Select(config.Config{ProjectType: config.ProjectNode, IncludeML: true}).Tools.HeavyTools)
		assert.True(t, Select(config.Config{ProjectType: config.ProjectPython}).Tools.HeavyTools)
		assert.False(t, Select(config.Config{ProjectType: config.ProjectNode}).Tools.HeavyTools)
	})
}

func TestSelect_Environments(t *testing.T) {
	assert.Equal(t, []string{"development"},
		Select(config.Config{ProjectType: config.ProjectNode}).Environments)
	assert.Equal(t, []string{"development", "production"},
		Select(config.Config{ProjectType: config.ProjectReact, Backend: config.BackendFirebase}).Environments)
	assert.Equal(t, []string{"development", "staging", "production"},
		Select(config.Config{ProjectType: config.ProjectFullStack}).Environments)
}
