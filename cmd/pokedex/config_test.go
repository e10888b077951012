package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/pokedex/internal/config"
)

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokedex", "config.toml")

	require.NoError(t, writeDefaultConfig(path, false))
	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	require.NoError(t, os.WriteFile(path, []byte("[audio]\nvolume = 10\n"), 0o644))
	assert.ErrorContains(t, writeDefaultConfig(path, false), "already exists")

	cfg, err = config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Audio.Volume, "existing file left alone")

	require.NoError(t, writeDefaultConfig(path, true))
	cfg, err = config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Audio.Volume, cfg.Audio.Volume)
}

func TestConfigInitCommandHonorsConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	t.Cleanup(func() {
		configPath = ""
		forceInit = false
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", path, "config", "init"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, path+"\n", out.String())
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
