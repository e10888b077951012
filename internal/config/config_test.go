package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPathHonorsXDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "pokedex", "config.toml"), path)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[audio]
backend = "mpv"
volume = 40

[keybinds]
cry = "C"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, BackendMPV, cfg.Audio.Backend)
	assert.Equal(t, 40, cfg.Audio.Volume)
	assert.Equal(t, "C", cfg.Keybinds.Cry)
	assert.Equal(t, "Right", cfg.Keybinds.Next, "unset keys keep their defaults")
	assert.Equal(t, 960, cfg.UI.Width)
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[audio\nbackend="), 0o644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Audio.Backend = BackendNone
	cfg.UI.Fullscreen = true
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestCacheDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(tmp, "pokedex", "cache", "sprites"), cfg.CacheDir())

	cfg.Cache.Dir = "/var/cache/pokedex"
	assert.Equal(t, "/var/cache/pokedex", cfg.CacheDir())
}

func TestSaveToCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pokedex.toml")

	cfg := DefaultConfig()
	cfg.Keybinds.Flip = "B"
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "B", loaded.Keybinds.Flip)
}

func TestSaveToReportsUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	assert.Error(t, DefaultConfig().SaveTo(filepath.Join(blocker, "config.toml")))
}
