package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeatures(t *testing.T) {
	features, err := ParseFeatures([]string{"ai-cli", "playwright"})
	require.NoError(t, err)
	assert.Equal(t, []Feature{FeatureAICLI, FeaturePlaywright}, features)

	_, err = ParseFeatures([]string{"warp-drive"})
	assert.Error(t, err)

	features, err = ParseFeatures(nil)
	require.NoError(t, err)
	assert.Empty(t, features)
}

func TestConfig_HasFeature(t *testing.T) {
	cfg := Config{Features: []Feature{FeatureGCloud}}
	assert.True(t, cfg.HasFeature(FeatureGCloud))
	assert.False(t, cfg.HasFeature(FeatureAICLI))
}

func TestConfig_EffectiveBackend(t *testing.T) {
	assert.Equal(t, BackendNone, Config{}.EffectiveBackend())
	assert.Equal(t, BackendExpress, Config{Backend: BackendExpress}.EffectiveBackend())
}

func TestConfig_Validate(t *testing.T) {
	assert.Error(t, Config{}.Validate())
	assert.NoError(t, Config{ProjectName: "ok"}.Validate())
}

func TestReadOverrides(t *testing.T) {
	t.Run("missing file is empty", func(t *testing.T) {
		overrides, err := ReadOverrides(filepath.Join(t.TempDir(), OverrideFile))
		require.NoError(t, err)
		assert.Empty(t, overrides)
	})

	t.Run("reads key value pairs", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), OverrideFile)
		require.NoError(t, os.WriteFile(path, []byte("name = \"shop\"\ntype = \"react\"\n"), 0o644))

		overrides, err := ReadOverrides(path)
		require.NoError(t, err)
		assert.Equal(t, "shop", overrides["name"])
		assert.Equal(t, "react", overrides["type"])
	})

	t.Run("malformed file errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), OverrideFile)
		require.NoError(t, os.WriteFile(path, []byte("name = [unclosed"), 0o644))

		_, err := ReadOverrides(path)
		assert.Error(t, err)
	})
}
