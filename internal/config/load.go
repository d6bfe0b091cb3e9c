package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// candidates are looked up in order when no explicit path is given.
var candidates = []string{".gofixer.yaml", ".gofixer.yml", ".gofixer.toml"}

// Load reads a YAML or TOML config file, expands environment variables and
// validates the result. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}

		return nil, fmt.Errorf("cannot read config file %q: %w", path, err)
	}

	expanded := ExpandEnv(string(data))
	cfg := Default()

	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.Decode(expanded, &cfg); err != nil {
			return nil, fmt.Errorf("invalid TOML in %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

// Discover returns the first config file found in dir, or "" when there is
// none.
func Discover(dir string) (string, error) {
	for _, name := range candidates {
		path := filepath.Join(dir, name)

		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}

		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}

	return "", nil
}

// Resolve loads path when set; otherwise it discovers a config file in dir
// and falls back to Default when none exists.
func Resolve(path, dir string) (*Config, error) {
	if path == "" {
		found, err := Discover(dir)
		if err != nil {
			return nil, err
		}

		if found == "" {
			cfg := Default()
			return &cfg, nil
		}

		path = found
	}

	return Load(path)
}
