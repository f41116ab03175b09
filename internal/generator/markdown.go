package generator

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/universal-dev-env/udev/internal/config"
	"github.com/universal-dev-env/udev/internal/strategy"
)

// markdownContext is the single data shape handed to every markdown template.
type markdownContext struct {
	Config     config.Config
	Strategy   strategy.Strategy
	Backend    config.Backend
	Playwright bool
}

func render(name, text string, cfg config.Config, strat strategy.Strategy) (string, error) {
	tpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return "", fmt.Errorf("cannot parse %s template: %w", name, err)
	}
	var out bytes.Buffer
	ctx := markdownContext{
		Config:     cfg,
		Strategy:   strat,
		Backend:    cfg.EffectiveBackend(),
		Playwright: cfg.HasFeature(config.FeaturePlaywright),
	}
	if err := tpl.Execute(&out, ctx); err != nil {
		return "", fmt.Errorf("cannot render %s template: %w", name, err)
	}
	return out.String(), nil
}

const readmeTemplate = `# {{ .Config.ProjectName }}

A {{ .Config.ProjectType }} project scaffolded by universal-dev-env.

## Environment

- Container strategy: {{ .Strategy.Container }}
- Deployment: {{ .Strategy.Deployment }}
- Backend: {{ .Backend }}
{{- if .Config.IncludeML }}
- Machine-learning tooling included
{{- end }}

## Getting started

{{ if eq .Strategy.Container "docker-compose" -}}
` + "```bash\ndocker compose up --build\n```" + `
{{- else if eq .Strategy.Container "docker" -}}
` + "```bash\ndocker build -t {{ .Config.ProjectName | lower }} .\ndocker run -p 3000:3000 {{ .Config.ProjectName | lower }}\n```" + `
{{- else -}}
Open this folder in VS Code and reopen in the dev container.
{{- end }}

## Environments

{{ range .Strategy.Environments }}- ` + "`.env.{{ . }}`" + `
{{ end }}
`

// Readme renders README.md.
func Readme(cfg config.Config, strat strategy.Strategy) (string, error) {
	return render("readme", readmeTemplate, cfg, strat)
}

const aiContextTemplate = `# Project context

- Name: {{ .Config.ProjectName }}
- Type: {{ .Config.ProjectType }}
- Backend: {{ .Backend }}
- Container strategy: {{ .Strategy.Container }}
- Deployment strategy: {{ .Strategy.Deployment }}
- Tool install location: {{ .Strategy.Install }}

## Conventions

- Generated files live at the project root; do not hand-edit Dockerfiles
  without updating this context.
- Session state is tracked in SESSION_HANDOFF.md. Update it before ending a
  working session.
{{- if .Playwright }}
- End-to-end tests use Playwright.
{{- end }}
`

// AIContext renders .ai/context.md, the project summary consumed by AI
// coding assistants.
func AIContext(cfg config.Config, strat strategy.Strategy) (string, error) {
	return render("ai-context", aiContextTemplate, cfg, strat)
}

const onboardingTemplate = `# AI agent onboarding

Welcome. This project was scaffolded by universal-dev-env.

1. Read ` + "`.ai/context.md`" + ` for the project shape.
2. Read ` + "`SESSION_HANDOFF.md`" + ` for the state of the previous session.
3. Before finishing, write what you changed and what remains into
   ` + "`SESSION_HANDOFF.md`" + `.

Project: {{ .Config.ProjectName }} ({{ .Config.ProjectType }}{{ if ne .Backend "none" }} + {{ .Backend }}{{ end }})
`

// Onboarding renders AI_AGENT_ONBOARDING.md.
func Onboarding(cfg config.Config, strat strategy.Strategy) (string, error) {
	return render("onboarding", onboardingTemplate, cfg, strat)
}

const sessionHandoffTemplate = `# Session handoff

Project: {{ .Config.ProjectName }}

## Current state

Fresh scaffold, no work done yet.

## Next steps

- [ ] Review generated configuration
- [ ] Install dependencies
`

// SessionHandoff renders the initial SESSION_HANDOFF.md. The scaffolder
// never overwrites an existing copy of this file.
func SessionHandoff(cfg config.Config, strat strategy.Strategy) (string, error) {
	return render("session-handoff", sessionHandoffTemplate, cfg, strat)
}
