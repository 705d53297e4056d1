// Package config loads the carddeck CLI configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"golang.org/x/text/language"
)

// Config represents the complete CLI configuration
type Config struct {
	LogLevel string         `hcl:"log_level,optional"`
	Locale   string         `hcl:"locale,optional"`
	Color    *bool          `hcl:"color,optional"`
	Shuffle  *ShuffleConfig `hcl:"shuffle,block"`
	Stats    *StatsConfig   `hcl:"stats,block"`
}

// ShuffleConfig controls the random source used for shuffling
type ShuffleConfig struct {
	// Seed of 0 means derive one from the clock
	Seed int64 `hcl:"seed,optional"`
}

// StatsConfig controls the shuffle statistics runner
type StatsConfig struct {
	Trials  int `hcl:"trials,optional"`
	Workers int `hcl:"workers,optional"`
}

// Default returns the default configuration
func Default() *Config {
	color := true
	return &Config{
		LogLevel: "info",
		Locale:   "en",
		Color:    &color,
		Shuffle:  &ShuffleConfig{},
		Stats: &StatsConfig{
			Trials:  10000,
			Workers: 4,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()

	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Locale == "" {
		c.Locale = def.Locale
	}
	if c.Color == nil {
		c.Color = def.Color
	}
	if c.Shuffle == nil {
		c.Shuffle = def.Shuffle
	}
	if c.Stats == nil {
		c.Stats = def.Stats
	}
	if c.Stats.Trials == 0 {
		c.Stats.Trials = def.Stats.Trials
	}
	if c.Stats.Workers == 0 {
		c.Stats.Workers = def.Stats.Workers
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be debug, info, warn or error", c.LogLevel)
	}

	if _, err := c.Language(); err != nil {
		return err
	}

	if c.Stats != nil {
		if c.Stats.Trials < 1 {
			return fmt.Errorf("stats trials must be positive, got %d", c.Stats.Trials)
		}
		if c.Stats.Workers < 1 {
			return fmt.Errorf("stats workers must be positive, got %d", c.Stats.Workers)
		}
	}
	return nil
}

// Language parses the configured locale.
func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// ColorEnabled reports whether styled output is enabled.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
