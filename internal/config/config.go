package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the in-memory representation of ~/.modscout/modscout.yaml.
type Config struct {
	// ModulesPath is the root directory scanned by `modscout sync`.
	// Layout: <modules_path>/<category>/<module-id>/module.yaml.
	ModulesPath string `yaml:"modules_path"`

	// Excludes are glob patterns skipped while scanning modules.
	Excludes []string `yaml:"excludes,omitempty"`

	// SuggestLimit caps how many recommendations suggest prints (≤10).
	SuggestLimit int `yaml:"suggest_limit,omitempty"`
}

// ModscoutDir returns the absolute path to the modscout home directory.
// MODSCOUT_HOME overrides the default ~/.modscout/.
func ModscoutDir() (string, error) {
	if v, err := GetConfigValue("MODSCOUT_HOME"); err == nil && v != "" {
		return ExpandPath(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".modscout"), nil
}

// ConfigPath returns the absolute path to modscout.yaml.
func ConfigPath() (string, error) {
	dir, err := ModscoutDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "modscout.yaml"), nil
}

// RegistryPath returns the absolute path to the registry document.
func RegistryPath() (string, error) {
	dir, err := ModscoutDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "registry.json"), nil
}

// InstalledPath returns the absolute path to the installed-modules document.
func InstalledPath() (string, error) {
	dir, err := ModscoutDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "installed.json"), nil
}

// IndexPath returns the absolute path to the search index cache document.
func IndexPath() (string, error) {
	dir, err := ModscoutDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache", "search_index.json"), nil
}

// IndexLockPath returns the path of the file lock taken during index rebuilds.
func IndexLockPath() (string, error) {
	dir, err := ModscoutDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache", "index.lock"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the default Config written on first modscout init.
func DefaultConfig() (*Config, error) {
	dir, err := ModscoutDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		ModulesPath:  filepath.Join(dir, "modules"),
		SuggestLimit: 10,
		Excludes: []string{
			".DS_Store",
			"Thumbs.db",
			"node_modules/",
			"*.tmp",
			"*.bak",
			"*~",
			".git/",
			"__tests__/",
			"*.log",
		},
	}, nil
}

// Load reads and parses modscout.yaml.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	// Expand ~ and apply the MODSCOUT_MODULES_PATH override at load time.
	if v, envErr := GetConfigValue("MODSCOUT_MODULES_PATH"); envErr == nil && v != "" {
		cfg.ModulesPath = v
	}
	cfg.ModulesPath, err = ExpandPath(cfg.ModulesPath)
	if err != nil {
		return nil, err
	}
	if cfg.SuggestLimit <= 0 || cfg.SuggestLimit > 10 {
		cfg.SuggestLimit = 10
	}
	return &cfg, nil
}

// Save marshals cfg and writes it to modscout.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
