package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("JOTTER_PATH overrides the slot location", func(t *testing.T) {
		custom := filepath.Join(t.TempDir(), "slot.json")
		t.Setenv("JOTTER_PATH", custom)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, custom, cfg.StorePath)
	})

	t.Run("defaults to a file in the home directory", func(t *testing.T) {
		t.Setenv("JOTTER_PATH", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ".jotter.json", filepath.Base(cfg.StorePath))
	})
}
