// Package config loads the run configuration of the pair and check
// commands from a YAML or TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"setup-mirrors/internal/match"
	"setup-mirrors/internal/pairing"
)

var (
	ErrUnknownFormat = errors.New("unknown config format")
	ErrUnknownKey    = errors.New("unknown config key")
	ErrMissingInput  = errors.New("input path is required")
	ErrMissingOutput = errors.New("output path is required")
	ErrSeparator     = errors.New("stage separator must not be blank")
)

// Keys lists the keys a config file may set.
var Keys = []string{"input", "output", "database", "report", "stage_separator"}

// Config is one run of the pair or check command. Paths may be "-" for stdio.
type Config struct {
	Input          string `yaml:"input" toml:"input"`
	Output         string `yaml:"output" toml:"output"`
	Database       string `yaml:"database,omitempty" toml:"database"`
	Report         string `yaml:"report,omitempty" toml:"report"`
	StageSeparator string `yaml:"stage_separator,omitempty" toml:"stage_separator"`
}

// Default returns a config with every optional field set.
func Default() Config {
	return Config{StageSeparator: pairing.DefaultStageSeparator}
}

// LoadFile reads a config file, choosing the format by extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// ParseYAML parses YAML data into a Config.
func ParseYAML(data []byte) (*Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// ParseTOML parses TOML data into a Config. Keys the config does not know
// are rejected.
func ParseTOML(data []byte) (*Config, error) {
	cfg := Default()

	var raw Config

	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, unknownKey(undecoded[0].String())
	}

	if meta.IsDefined("input") {
		cfg.Input = raw.Input
	}

	if meta.IsDefined("output") {
		cfg.Output = raw.Output
	}

	if meta.IsDefined("database") {
		cfg.Database = raw.Database
	}

	if meta.IsDefined("report") {
		cfg.Report = raw.Report
	}

	if meta.IsDefined("stage_separator") {
		cfg.StageSeparator = raw.StageSeparator
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func unknownKey(key string) error {
	if near, ok := match.Closest(key, Keys, 3); ok {
		return fmt.Errorf("%w: %s (did you mean %s?)", ErrUnknownKey, key, near)
	}

	return fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// applyDefaults trims paths and fills in empty optional fields.
func applyDefaults(cfg *Config) {
	cfg.Input = strings.TrimSpace(cfg.Input)
	cfg.Output = strings.TrimSpace(cfg.Output)
	cfg.Database = strings.TrimSpace(cfg.Database)
	cfg.Report = strings.TrimSpace(cfg.Report)

	if cfg.StageSeparator == "" {
		cfg.StageSeparator = pairing.DefaultStageSeparator
	}
}

// Validate reports the first missing or invalid field.
func (c *Config) Validate() error {
	switch {
	case c.Input == "":
		return ErrMissingInput
	case c.Output == "":
		return ErrMissingOutput
	case strings.TrimSpace(c.StageSeparator) == "":
		return ErrSeparator
	default:
		return nil
	}
}

// ValidateCheck is Validate for a check run, which writes no table.
func (c *Config) ValidateCheck() error {
	switch {
	case c.Input == "":
		return ErrMissingInput
	case strings.TrimSpace(c.StageSeparator) == "":
		return ErrSeparator
	default:
		return nil
	}
}
