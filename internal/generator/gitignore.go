package generator

import (
	"github.com/universal-dev-env/udev/internal/config"
)

// Gitignore renders a per-project-type .gitignore.
func Gitignore(cfg config.Config) string {
	base := ".env\n.env.*\n*.log\n.DS_Store\n"
	switch cfg.ProjectType {
	case config.ProjectPython:
		return base + "__pycache__/\n.venv/\n*.egg-info/\n"
	case config.ProjectFullStack:
		return base + "node_modules/\nbuild/\ndist/\n"
	default:
		return base + "node_modules/\nbuild/\n"
	}
}
