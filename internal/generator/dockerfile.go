// Package generator builds the text of every scaffolded file. Generators are
// pure functions from (Config, Strategy) to file content; callers own all
// file writes. Missing fields default rather than error, matching the
// best-effort scope of the tool.
package generator

import (
	"strings"

	"github.com/universal-dev-env/udev/internal/config"
	"github.com/universal-dev-env/udev/internal/strategy"
)

// Dockerfile renders the project Dockerfile. Python projects get a slim
// Python image on port 8000; everything else gets the Node image on 3000.
// The docker-multi-stage feature switches Node builds to a two-stage image.
func Dockerfile(cfg config.Config, strat strategy.Strategy) string {
	switch cfg.ProjectType {
	case config.ProjectPython:
		return pythonDockerfile(cfg)
	default:
		if cfg.HasFeature(config.FeatureMultiStage) {
			return nodeMultiStageDockerfile(cfg)
		}
		return nodeDockerfile(cfg)
	}
}

// ServerDockerfile renders the Dockerfile for the API side of a
// client/server compose layout. Same base image, but the server listens on
// 3001 so the client can keep 3000.
func ServerDockerfile(cfg config.Config, strat strategy.Strategy) string {
	var b strings.Builder
	b.WriteString("FROM node:18-alpine\n\n")
	b.WriteString("WORKDIR /app\n\n")
	b.WriteString("COPY package*.json ./\n")
	b.WriteString("RUN npm ci\n\n")
	b.WriteString("COPY . .\n\n")
	b.WriteString("EXPOSE 3001\n")
	b.WriteString("CMD [\"npm\", \"start\"]\n")
	return b.String()
}

func nodeDockerfile(cfg config.Config) string {
	var b strings.Builder
	b.WriteString("FROM node:18-alpine\n\n")
	b.WriteString("WORKDIR /app\n\n")
	b.WriteString("COPY package*.json ./\n")
	b.WriteString("RUN npm ci\n\n")
	b.WriteString("COPY . .\n\n")
	if cfg.ProjectType == config.ProjectReact {
		b.WriteString("ENV NODE_ENV=development\n\n")
	}
	b.WriteString("EXPOSE 3000\n")
	b.WriteString("CMD [\"npm\", \"start\"]\n")
	return b.String()
}

func nodeMultiStageDockerfile(cfg config.Config) string {
	var b strings.Builder
	b.WriteString("FROM node:18-alpine AS build\n")
	b.WriteString("WORKDIR /app\n")
	b.WriteString("COPY package*.json ./\n")
	b.WriteString("RUN npm ci\n")
	b.WriteString("COPY . .\n")
	b.WriteString("RUN npm run build\n\n")
	b.WriteString("FROM node:18-alpine\n")
	b.WriteString("WORKDIR /app\n")
	b.WriteString("ENV NODE_ENV=production\n")
	b.WriteString("COPY --from=build /app/node_modules ./node_modules\n")
	b.WriteString("COPY --from=build /app .\n")
	b.WriteString("EXPOSE 3000\n")
	b.WriteString("CMD [\"npm\", \"start\"]\n")
	return b.String()
}

func pythonDockerfile(cfg config.Config) string {
	var b strings.Builder
	b.WriteString("FROM python:3.11-slim\n\n")
	b.WriteString("WORKDIR /app\n\n")
	b.WriteString("COPY requirements.txt .\n")
	b.WriteString("RUN pip install --no-cache-dir -r requirements.txt\n\n")
	if cfg.IncludeML {
		b.WriteString("RUN pip install --no-cache-dir jupyter numpy pandas scikit-learn\n\n")
	}
	b.WriteString("COPY . .\n\n")
	b.WriteString("EXPOSE 8000\n")
	b.WriteString("CMD [\"python\", \"main.py\"]\n")
	return b.String()
}
