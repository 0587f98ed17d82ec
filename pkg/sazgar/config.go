// Package sazgar wires the table-function catalog, the live system provider
// and the internal metrics exporters into a runnable engine.
package sazgar

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v9"
	"gopkg.in/yaml.v3"

	"github.com/Angelerator/Sazgar/pkg/internal/imetrics"
	"github.com/Angelerator/Sazgar/pkg/sysprobe"
)

// Version of the engine, reported by the sazgar_version table function.
const Version = "0.4.0"

// ConfigError reports an invalid configuration value.
type ConfigError string

func (e ConfigError) Error() string { return string(e) }

type Config struct {
	LogLevel string `yaml:"log_level" env:"SAZGAR_LOG_LEVEL"`

	// ProfilePort opens a pprof endpoint when non-zero.
	ProfilePort int `yaml:"profile_port" env:"SAZGAR_PROFILE_PORT"`

	Probe           sysprobe.Config `yaml:"probe"`
	InternalMetrics imetrics.Config `yaml:"internal_metrics"`
}

// DefaultConfig returns the configuration used when no file and no
// environment overrides are present.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "INFO",
		Probe:    sysprobe.DefaultConfig(),
		InternalMetrics: imetrics.Config{
			Prometheus: imetrics.PrometheusConfig{Path: "/internal/metrics"},
		},
	}
}

// LoadConfig overrides the default configuration first with the optional
// YAML file, then with SAZGAR_* environment variables.
func LoadConfig(file io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if file != nil {
		cfgBuf, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("reading YAML configuration: %w", err)
		}
		if err := yaml.Unmarshal(cfgBuf, cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML configuration: %w", err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("reading env vars: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return ConfigError(fmt.Sprintf("invalid log_level %q", c.LogLevel))
	}
	if c.Probe.CPUSampleInterval <= 0 {
		return ConfigError("probe.cpu_sample_interval must be positive")
	}
	if c.Probe.ProcessCacheSize <= 0 {
		return ConfigError("probe.process_cache_size must be at least 1")
	}
	return nil
}
