// Package config loads settings for the kinematics command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"

	"github.com/hupe1980/unitvec/internal/kernel"
)

// EnvPrefix is prepended to every environment variable, e.g. UNITVEC_BODIES.
const EnvPrefix = "unitvec"

// Config holds all command configuration.
type Config struct {
	Bodies   int     `envconfig:"BODIES" yaml:"bodies"`
	Steps    int     `envconfig:"STEPS" yaml:"steps"`
	TimeStep float64 `envconfig:"DT" yaml:"dt"`
	Gravity  float64 `envconfig:"GRAVITY" yaml:"gravity"`
	Seed     int64   `envconfig:"SEED" yaml:"seed"`

	Parallelism int    `envconfig:"PARALLELISM" yaml:"parallelism"`
	ShardSize   int    `envconfig:"SHARD_SIZE" yaml:"shard_size"`
	Kernel      string `envconfig:"KERNEL" yaml:"kernel,omitempty"`

	LogLevel  string `envconfig:"LOG_LEVEL" yaml:"log_level"`
	LogFormat string `envconfig:"LOG_FORMAT" yaml:"log_format"`

	// MetricsAddr, when set, serves Prometheus metrics at /metrics.
	MetricsAddr string `envconfig:"METRICS_ADDR" yaml:"metrics_addr,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Bodies:      10_000,
		Steps:       1_000,
		TimeStep:    0.01,
		Gravity:     9.81,
		Seed:        1,
		Parallelism: 1,
		ShardSize:   4096,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then UNITVEC_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error

	if c.Bodies <= 0 {
		errs = append(errs, fmt.Errorf("bodies must be positive, got %d", c.Bodies))
	}
	if c.Steps < 0 {
		errs = append(errs, fmt.Errorf("steps must not be negative, got %d", c.Steps))
	}
	if c.TimeStep < 0 || math.IsNaN(c.TimeStep) || math.IsInf(c.TimeStep, 0) {
		errs = append(errs, fmt.Errorf("dt must be finite and non-negative, got %v", c.TimeStep))
	}
	if c.ShardSize <= 0 {
		errs = append(errs, fmt.Errorf("shard_size must be positive, got %d", c.ShardSize))
	}
	if c.Kernel != "" {
		if _, ok := kernel.ParseMode(c.Kernel); !ok {
			errs = append(errs, fmt.Errorf("unknown kernel %q", c.Kernel))
		}
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format must be text or json, got %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// KernelMode returns the configured kernel mode, if any.
func (c *Config) KernelMode() (kernel.Mode, bool) {
	if c.Kernel == "" {
		return kernel.Generic, false
	}
	return kernel.ParseMode(c.Kernel)
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
