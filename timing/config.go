package timing

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds harness settings loaded from YAML:
//
//	min_trials: 5
//	slack: 0.0001
type Config struct {
	// MinTrials is the minimum number of timed trials. Zero means the default.
	MinTrials int `yaml:"min_trials,omitempty"`

	// Slack is the allowed drift of the average in seconds. Nil means the default.
	Slack *float64 `yaml:"slack,omitempty"`
}

// LoadConfig reads and parses a harness config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timing config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses harness config YAML. Unknown fields are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.MinTrials < 0 {
		return nil, fmt.Errorf("invalid timing config: min_trials must be non-negative, got %d", cfg.MinTrials)
	}
	if cfg.Slack != nil && *cfg.Slack < 0 {
		return nil, fmt.Errorf("invalid timing config: slack must be non-negative, got %g", *cfg.Slack)
	}

	return &cfg, nil
}

// Options converts the config to harness options.
func (c *Config) Options() []Option {
	var opts []Option
	if c.MinTrials > 0 {
		opts = append(opts, WithMinTrials(c.MinTrials))
	}
	if c.Slack != nil {
		opts = append(opts, WithSlack(*c.Slack))
	}
	return opts
}
