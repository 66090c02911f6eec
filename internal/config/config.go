// Package config provides configuration file parsing for macsnap.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the optional user configuration. Every field has a
// working zero value; the config file itself is optional.
type Config struct {
	// AppDirs lists extra directories to scan for .app bundles, in
	// addition to /Applications and ~/Applications.
	AppDirs []string `yaml:"app_dirs"`

	// SnapshotDir is where index mode writes the inventory file.
	// Empty means the current working directory.
	SnapshotDir string `yaml:"snapshot_dir"`

	// UI controls the restore selection dialog: "auto" (default)
	// uses the checklist when a terminal is available, "never"
	// always uses the pass-through fallback.
	UI string `yaml:"ui"`
}

// Dir returns the macsnap config directory, respecting
// XDG_CONFIG_HOME. Defaults to ~/.config/macsnap.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "macsnap"), nil
}

// Load reads {dir}/config.yaml. A missing file returns the default
// config without an error; a malformed file is an error so the user
// notices a typo rather than silently losing settings.
func Load(dir string) (*Config, error) {
	cfg := &Config{UI: "auto"}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.UI == "" {
		cfg.UI = "auto"
	}

	return cfg, nil
}
