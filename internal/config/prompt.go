package config

import (
	"github.com/AlecAivazis/survey/v2"
)

// PromptMissing fills any unset Config fields by asking the user. Overrides
// answer prompts without showing them, so a .udev.toml or --skip-prompts run
// stays non-interactive for the keys it covers.
func PromptMissing(cfg *Config, overrides Overrides) error {
	if cfg.ProjectName == "" {
		if v, ok := overrides["name"]; ok {
			cfg.ProjectName = v
		} else {
			q := &survey.Input{Message: "Project name", Default: "my-project"}
			if err := survey.AskOne(q, &cfg.ProjectName, survey.WithValidator(survey.Required)); err != nil {
				return err
			}
		}
	}

	if cfg.ProjectType == "" {
		if v, ok := overrides["type"]; ok {
			cfg.ProjectType = ProjectType(v)
		} else {
			var choice string
			q := &survey.Select{
				Message: "Project type",
				Options: projectTypeNames(),
				Default: string(ProjectNode),
			}
			if err := survey.AskOne(q, &choice); err != nil {
				return err
			}
			cfg.ProjectType = ProjectType(choice)
		}
	}

	if cfg.Backend == "" {
		if v, ok := overrides["backend"]; ok {
			cfg.Backend = Backend(v)
		} else {
			var choice string
			q := &survey.Select{
				Message: "Backend",
				Options: backendNames(),
				Default: string(BackendNone),
			}
			if err := survey.AskOne(q, &choice); err != nil {
				return err
			}
			cfg.Backend = Backend(choice)
		}
	}

	if len(cfg.Features) == 0 {
		var picked []string
		q := &survey.MultiSelect{
			Message: "Optional features",
			Options: featureNames(),
		}
		if err := survey.AskOne(q, &picked); err != nil {
			return err
		}
		features, err := ParseFeatures(picked)
		if err != nil {
			return err
		}
		cfg.Features = features
	}

	return nil
}

func projectTypeNames() []string {
	types := ProjectTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

func backendNames() []string {
	backends := Backends()
	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = string(b)
	}
	return names
}

func featureNames() []string {
	features := Features()
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = string(f)
	}
	return names
}
