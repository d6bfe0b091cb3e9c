// Package config loads the gofixer project configuration from .gofixer.yaml or
// .gofixer.toml.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultCacheFile is the cache location used when none is configured.
const DefaultCacheFile = ".gofixer.cache"

// Config is the project configuration. Command-line flags override it.
type Config struct {
	// Rules selects and orders the rules to apply. Empty means all builtins.
	Rules []string `yaml:"rules" toml:"rules" validate:"dive,required"`
	// Exclude holds regular expressions matched against relative unit paths.
	Exclude []string `yaml:"exclude" toml:"exclude" validate:"dive,required"`
	// Validator is "go" or "none".
	Validator string `yaml:"validator" toml:"validator" validate:"oneof=go none"`
	// Parallel is the number of concurrent workers.
	Parallel int          `yaml:"parallel" toml:"parallel" validate:"min=1,max=256"`
	Cache    CacheConfig  `yaml:"cache" toml:"cache"`
	Compat   CompatConfig `yaml:"compat" toml:"compat"`
}

// CacheConfig controls the result cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	File    string `yaml:"file" toml:"file" validate:"required_if=Enabled true"`
}

// CompatConfig holds switches for compatibility shims.
type CompatConfig struct {
	// TokenizerGuard skips units whose content is known to break the
	// tokenizer instead of reporting them as invalid.
	TokenizerGuard bool `yaml:"tokenizer_guard" toml:"tokenizer_guard"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Validator: "go",
		Parallel:  1,
		Cache: CacheConfig{
			Enabled: true,
			File:    DefaultCacheFile,
		},
		Compat: CompatConfig{
			TokenizerGuard: true,
		},
	}
}

var validate = validator.New()

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}
