package generator

import (
	"github.com/joho/godotenv"

	"github.com/universal-dev-env/udev/internal/config"
	"github.com/universal-dev-env/udev/internal/strategy"
)

// EnvFile renders the .env.<environment> file for one environment name.
// godotenv keeps the key order stable, so re-runs produce identical files.
func EnvFile(cfg config.Config, strat strategy.Strategy, environment string) (string, error) {
	vars := map[string]string{
		"NODE_ENV": nodeEnv(environment),
		"APP_NAME": cfg.ProjectName,
	}

	switch cfg.ProjectType {
	case config.ProjectPython:
		delete(vars, "NODE_ENV")
		vars["PYTHON_ENV"] = environment
		vars["PORT"] = "8000"
	default:
		vars["PORT"] = "3000"
	}

	if strat.Container == strategy.ContainerCompose {
		vars["DATABASE_URL"] = "postgres://postgres:postgres@db:5432/" + databaseName(cfg)
	}
	if strat.Deployment == strategy.DeployServerless && cfg.Backend == config.BackendFirebase {
		vars["FIREBASE_PROJECT"] = sanitizeIdentifier(cfg.ProjectName)
	}
	if cfg.AIContext {
		vars["AI_CONTEXT_DIR"] = ".ai"
	}

	content, err := godotenv.Marshal(vars)
	if err != nil {
		return "", err
	}
	return content + "\n", nil
}

func nodeEnv(environment string) string {
	// npm tooling only understands development/production/test.
	if environment == "staging" {
		return "production"
	}
	return environment
}
