// Package config holds the user selections that drive scaffolding. A Config
// is assembled once per invocation, from flags or interactive prompts, and is
// never mutated afterwards.
package config

import (
	"errors"
	"fmt"
)

// ProjectType identifies the kind of project being scaffolded.
type ProjectType string

const (
	ProjectReact     ProjectType = "react"
	ProjectNode      ProjectType = "node"
	ProjectPython    ProjectType = "python"
	ProjectFullStack ProjectType = "full-stack"
	ProjectCustom    ProjectType = "custom"
)

// Backend identifies the server-side choice for a project.
type Backend string

const (
	BackendNone       Backend = "none"
	BackendExpress    Backend = "express"
	BackendNextJS     Backend = "nextjs"
	BackendFirebase   Backend = "firebase"
	BackendServerless Backend = "serverless"
)

// Feature is an optional capability toggled on during setup.
type Feature string

const (
	FeatureAICLI      Feature = "ai-cli"
	FeatureGCloud     Feature = "gcloud"
	FeatureGitHubCLI  Feature = "github-cli"
	FeaturePlaywright Feature = "playwright"
	FeatureMultiStage Feature = "docker-multi-stage"
	FeatureVSCodeExt  Feature = "vscode-extensions"
)

// ProjectTypes lists the recognised project types, in prompt order.
func ProjectTypes() []ProjectType {
	return []ProjectType{ProjectReact, ProjectNode, ProjectPython, ProjectFullStack, ProjectCustom}
}

// Backends lists the recognised backends, in prompt order.
func Backends() []Backend {
	return []Backend{BackendNone, BackendExpress, BackendNextJS, BackendFirebase, BackendServerless}
}

// Features lists every recognised feature flag.
func Features() []Feature {
	return []Feature{FeatureAICLI, FeatureGCloud, FeatureGitHubCLI, FeaturePlaywright, FeatureMultiStage, FeatureVSCodeExt}
}

// Config is the complete set of user selections for one scaffolding run.
// Unknown ProjectType or Backend values are carried through unchanged; the
// strategy selector handles them via its default branch rather than erroring.
type Config struct {
	ProjectName string
	ProjectType ProjectType
	Backend     Backend
	IncludeML   bool
	Features    []Feature
	AIContext   bool
}

// EffectiveBackend returns the backend, treating the zero value as "none".
func (c Config) EffectiveBackend() Backend {
	if c.Backend == "" {
		return BackendNone
	}
	return c.Backend
}

// HasFeature reports whether a feature flag was selected.
func (c Config) HasFeature(f Feature) bool {
	for _, have := range c.Features {
		if have == f {
			return true
		}
	}
	return false
}

// Validate checks the fields that must be present before scaffolding.
func (c Config) Validate() error {
	if c.ProjectName == "" {
		return errors.New("project name must not be empty")
	}
	return nil
}

// ParseFeatures converts feature names into Feature values, rejecting
// anything outside the recognised set.
func ParseFeatures(names []string) ([]Feature, error) {
	known := map[Feature]bool{}
	for _, f := range Features() {
		known[f] = true
	}
	out := make([]Feature, 0, len(names))
	for _, name := range names {
		f := Feature(name)
		if !known[f] {
			return nil, fmt.Errorf("unknown feature %q", name)
		}
		out = append(out, f)
	}
	return out, nil
}
