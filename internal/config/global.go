package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Global is the configuration stored in the user's config directory. Both
// fields are optional.
type Global struct {
	DefaultCellar string `yaml:"default_cellar,omitempty"`
	DataDir       string `yaml:"data_dir,omitempty"`
}

const (
	// GlobalDir is the directory name under XDG_CONFIG_HOME.
	GlobalDir = "winebuddy"
	// GlobalFile is the config file name.
	GlobalFile = "config.yml"
)

// GlobalPath returns the path to the global config file. Respects
// XDG_CONFIG_HOME, defaults to ~/.config/winebuddy/config.yml. Returns ""
// when no home directory can be determined.
func GlobalPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalDir, GlobalFile)
}

// LoadGlobal loads the global configuration file. Returns an empty config
// (not an error) if the file doesn't exist.
func LoadGlobal() (*Global, error) {
	path := GlobalPath()
	if path == "" {
		return &Global{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Global{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg Global
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	return &cfg, nil
}

// Save writes the global configuration file, creating its directory if
// needed.
func (g *Global) Save() error {
	path := GlobalPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(g)
	if err != nil {
		return fmt.Errorf("encoding global config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing global config: %w", err)
	}

	return nil
}
