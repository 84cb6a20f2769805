// Package config loads analysis configuration from a YAML file and
// GRIDLENS_* environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/gridlens/gridlens-go/pkg/gridlens/metrics"
	"github.com/gridlens/gridlens-go/pkg/gridlens/parser"
)

// Config is the complete application configuration. Precedence, lowest to
// highest: built-in defaults, YAML file, GRIDLENS_* environment variables.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Detection DetectionConfig `yaml:"detection" envconfig:"DETECTION"`
	// Metrics declares the domain-metric rules. Empty means the built-in
	// plant-management rule set.
	Metrics []metrics.Rule `yaml:"metrics" ignored:"true"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// DetectionConfig exposes the structure-detection thresholds. They are
// heuristics tuned to observed spreadsheets, so they are configuration, not
// constants.
type DetectionConfig struct {
	MinHeaderCells int `yaml:"min_header_cells" envconfig:"MIN_HEADER_CELLS"`
	TitleBlankSpan int `yaml:"title_blank_span" envconfig:"TITLE_BLANK_SPAN"`
	MinTitleLen    int `yaml:"min_title_len" envconfig:"MIN_TITLE_LEN"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Detection: DetectionConfig{
			MinHeaderCells: 3,
			TitleBlankSpan: 4,
			MinTitleLen:    10,
		},
	}
}

// Load reads configuration from an optional YAML file, then applies
// GRIDLENS_* environment overrides. An empty path skips the file step; a
// named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process("GRIDLENS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return &cfg, nil
}

// DetectionParams converts the configured thresholds for the parser.
func (c *Config) DetectionParams() parser.DetectionParams {
	return parser.DetectionParams{
		MinHeaderCells: c.Detection.MinHeaderCells,
		TitleBlankSpan: c.Detection.TitleBlankSpan,
		MinTitleLen:    c.Detection.MinTitleLen,
	}
}

// Rules returns the configured domain-metric rules, or the built-in rule
// set when the file declares none.
func (c *Config) Rules() []metrics.Rule {
	if len(c.Metrics) > 0 {
		return c.Metrics
	}
	return metrics.DefaultRules()
}
