package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/universal-dev-env/udev/internal/config"
)

func TestApplyDefaults(t *testing.T) {
	t.Run("overrides win", func(t *testing.T) {
		cfg := config.Config{}
		applyDefaults(&cfg, config.Overrides{"name": "shop", "type": "react", "backend": "express"})

		assert.Equal(t, "shop", cfg.ProjectName)
		assert.Equal(t, config.ProjectReact, cfg.ProjectType)
		assert.Equal(t, config.BackendExpress, cfg.Backend)
	})

	t.Run("node is the silent default type", func(t *testing.T) {
		cfg := config.Config{ProjectName: "x"}
		applyDefaults(&cfg, config.Overrides{})
		assert.Equal(t, config.ProjectNode, cfg.ProjectType)
	})

	t.Run("flags are not overwritten", func(t *testing.T) {
		cfg := config.Config{ProjectName: "x", ProjectType: config.ProjectPython}
		applyDefaults(&cfg, config.Overrides{"type": "react"})
		assert.Equal(t, config.ProjectPython, cfg.ProjectType)
	})
}

func TestCacheEnabled(t *testing.T) {
	orig, origNo := useCache, noCache
	defer func() { useCache, noCache = orig, origNo }()

	useCache, noCache = true, false
	assert.True(t, cacheEnabled())

	noCache = true
	assert.False(t, cacheEnabled())

	useCache, noCache = false, false
	assert.False(t, cacheEnabled())
}
