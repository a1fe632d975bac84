package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaults = Config{
	Title:      "sandbox",
	Width:      800,
	Height:     600,
	VSync:      true,
	ClearColor: [4]float32{0.1, 0.1, 0.1, 1},
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
title = "demo"
width = 1280
height = 720
vsync = false
clear_color = [0.0, 0.5, 1.0, 1.0]
`), 0o644))

	cfg, err := LoadConfig(path, defaults)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.False(t, cfg.VSync)
	assert.Equal(t, [4]float32{0, 0.5, 1, 1}, cfg.ClearColor)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 1024\n"), 0o644))

	cfg, err := LoadConfig(path, defaults)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, defaults.Title, cfg.Title)
	assert.Equal(t, defaults.Height, cfg.Height)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"), defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = ["), 0o644))

	cfg, err := LoadConfig(path, defaults)
	assert.Error(t, err)
	assert.Equal(t, defaults, cfg, "a bad file falls back to the defaults")
}
