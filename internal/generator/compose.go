package generator

import (
	"gopkg.in/yaml.v3"

	"github.com/universal-dev-env/udev/internal/config"
	"github.com/universal-dev-env/udev/internal/strategy"
)

type composeService struct {
	Build       string            `yaml:"build,omitempty"`
	Image       string            `yaml:"image,omitempty"`
	Ports       []string          `yaml:"ports,omitempty"`
	Environment map[string]string `yaml:"environment,omitempty"`
	EnvFile     []string          `yaml:"env_file,omitempty"`
	DependsOn   []string          `yaml:"depends_on,omitempty"`
	Volumes     []string          `yaml:"volumes,omitempty"`
}

type composeFile struct {
	Services map[string]composeService `yaml:"services"`
	Volumes  map[string]any            `yaml:"volumes,omitempty"`
}

// Compose renders docker-compose.yml for compose-strategy projects. A React
// client with an Express backend gets the classic client/server/db trio;
// full-stack projects add a redis side-car.
func Compose(cfg config.Config, strat strategy.Strategy) (string, error) {
	services := map[string]composeService{
		"client": {
			Build: "./client",
			Ports: []string{"3000:3000"},
			Environment: map[string]string{
				"REACT_APP_API_URL": "http://localhost:3001",
			},
			Volumes: []string{"./client:/app", "/app/node_modules"},
		},
		"server": {
			Build: "./server",
			Ports: []string{"3001:3001"},
			Environment: map[string]string{
				"DATABASE_URL": "postgres://postgres:postgres@db:5432/" + databaseName(cfg),
			},
			DependsOn: []string{"db"},
			Volumes:   []string{"./server:/app", "/app/node_modules"},
		},
		"db": {
			Image: "postgres:15-alpine",
			Ports: []string{"5432:5432"},
			Environment: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       databaseName(cfg),
			},
			Volumes: []string{"pgdata:/var/lib/postgresql/data"},
		},
	}

	if cfg.ProjectType == config.ProjectFullStack {
		services["redis"] = composeService{
			Image: "redis:7-alpine",
			Ports: []string{"6379:6379"},
		}
	}

	out, err := yaml.Marshal(composeFile{
		Services: services,
		Volumes:  map[string]any{"pgdata": nil},
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func databaseName(cfg config.Config) string {
	if cfg.ProjectName == "" {
		return "app"
	}
	return sanitizeIdentifier(cfg.ProjectName)
}
