// Package config loads run configuration from geoprofile.config.json via
// viper, applies defaults, and validates before any generation happens.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Supported output formats. "all" expands to every file format.
var Formats = []string{"csv", "excel", "json", "sqlite", "all"}

// SupportedLocale is the single generation dialect this build ships.
const SupportedLocale = "de_DE"

type Config struct {
	Count     int    `json:"count" mapstructure:"count"`
	Locale    string `json:"locale" mapstructure:"locale"`
	Format    string `json:"format" mapstructure:"format"`
	Output    string `json:"output" mapstructure:"output"`
	Map       bool   `json:"map" mapstructure:"map"`
	MinAge    int    `json:"min_age" mapstructure:"min_age"`
	MaxAge    int    `json:"max_age" mapstructure:"max_age"`
	PoolsFile string `json:"pools_file" mapstructure:"pools_file"`
}

// Load unmarshals whatever viper has read and fills in defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if !viper.IsSet("count") {
		cfg.Count = 10
	}
	if cfg.Locale == "" {
		cfg.Locale = SupportedLocale
	}
	if cfg.Format == "" {
		cfg.Format = "csv"
	}
	if cfg.Output == "" {
		cfg.Output = "profiles"
	}
	if cfg.MinAge == 0 {
		cfg.MinAge = 18
	}
	if cfg.MaxAge == 0 {
		cfg.MaxAge = 80
	}

	return &cfg, nil
}

// Validate rejects configurations that would produce a broken run. All
// checks happen before generation; failures here are fatal.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must be >= 0, got %d", c.Count)
	}
	if c.Locale != SupportedLocale {
		return fmt.Errorf("unsupported locale %q (only %s is available)", c.Locale, SupportedLocale)
	}
	valid := false
	for _, f := range Formats {
		if c.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown format %q (choose one of csv, excel, json, sqlite, all)", c.Format)
	}
	if c.Output == "" {
		return fmt.Errorf("output basename must not be empty")
	}
	if c.MinAge < 0 || c.MaxAge < c.MinAge {
		return fmt.Errorf("invalid age range %d-%d", c.MinAge, c.MaxAge)
	}
	return nil
}
