// Package config loads runtime settings for the command line tools.
// Priority: ENV > YAML > defaults (via env-default tags).
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root tool configuration.
type Config struct {
	Dialect DialectConfig `yaml:"dialect"`
	Scoring ScoringConfig `yaml:"scoring"`
	Log     LogConfig     `yaml:"log"`
}

// DialectConfig selects the dialect description to load.
type DialectConfig struct {
	// Path to a dialect YAML file. Empty means the built-in Spanish
	// dialect.
	Path string `yaml:"path" env:"DIALECT_PATH"`
}

// ScoringConfig holds comparison parameters.
type ScoringConfig struct {
	Mode              string  `yaml:"mode"               env:"SCORING_MODE"               env-default:"objective"`
	Register          string  `yaml:"register"           env:"SCORING_REGISTER"           env-default:"all"`
	CollapseThreshold float64 `yaml:"collapse_threshold" env:"SCORING_COLLAPSE_THRESHOLD" env-default:"0.3"`
	DropUnknown       bool    `yaml:"drop_unknown"       env:"SCORING_DROP_UNKNOWN"       env-default:"true"`
	AllophoneWeight   float64 `yaml:"allophone_weight"   env:"SCORING_ALLOPHONE_WEIGHT"   env-default:"0.25"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from the given YAML path plus the
// environment. An empty path falls back to ENV and defaults only; a
// non-empty path must exist.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks cross-field constraints cleanenv tags cannot express.
func (c *Config) Validate() error {
	switch c.Scoring.Mode {
	case "casual", "objective", "phonetic":
	default:
		return fmt.Errorf("scoring mode %q is not casual, objective or phonetic", c.Scoring.Mode)
	}
	if c.Scoring.CollapseThreshold < 0 || c.Scoring.CollapseThreshold > 1 {
		return fmt.Errorf("collapse threshold %v outside [0,1]", c.Scoring.CollapseThreshold)
	}
	if c.Scoring.AllophoneWeight < 0 || c.Scoring.AllophoneWeight > 1 {
		return fmt.Errorf("allophone weight %v outside [0,1]", c.Scoring.AllophoneWeight)
	}
	return nil
}
