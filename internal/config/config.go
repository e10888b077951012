package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appName = "pokedex"

type Config struct {
	Cache    CacheConfig   `toml:"cache"`
	Audio    AudioConfig   `toml:"audio"`
	UI       UIConfig      `toml:"ui"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type CacheConfig struct {
	// Dir overrides the sprite cache directory. Empty means <config dir>/cache/sprites.
	Dir string `toml:"dir"`
}

// Audio backends.
const (
	BackendBeep = "beep"
	BackendMPV  = "mpv"
	BackendNone = "none"
)

type AudioConfig struct {
	Backend string `toml:"backend"`
	Volume  int    `toml:"volume"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type KeybindConfig struct {
	Next     string `toml:"next"`
	Previous string `toml:"previous"`
	Flip     string `toml:"flip"`
	Cry      string `toml:"cry"`
	Back     string `toml:"back"`
}

func DefaultConfig() *Config {
	return &Config{
		Audio: AudioConfig{
			Backend: BackendBeep,
			Volume:  100,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      960,
			Height:     640,
		},
		Keybinds: KeybindConfig{
			Next:     "Right",
			Previous: "Left",
			Flip:     "F",
			Cry:      "Space",
			Back:     "Escape",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// CacheDir resolves the sprite cache directory, falling back to the temp dir
// when no config dir is available.
func (c *Config) CacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	if dir, err := ConfigDir(); err == nil {
		return filepath.Join(dir, "cache", "sprites")
	}
	return filepath.Join(os.TempDir(), appName, "sprites")
}

// Load reads the config from the default path.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to the default path.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, creating parent directories.
func (c *Config) SaveTo(path string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return toml.NewEncoder(f).Encode(c)
}
