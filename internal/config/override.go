package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// OverrideFile is the per-directory file that pre-answers prompts.
const OverrideFile = ".udev.toml"

// Overrides maps prompt keys (name, type, backend) to fixed answers.
type Overrides map[string]string

// ReadOverrides loads an override file. A missing file is not an error and
// yields an empty set.
func ReadOverrides(path string) (Overrides, error) {
	overrides := Overrides{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return overrides, nil
		}
		return nil, fmt.Errorf("cannot read override file %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), &overrides); err != nil {
		return nil, fmt.Errorf("%s does not match required format: %w", path, err)
	}
	return overrides, nil
}
