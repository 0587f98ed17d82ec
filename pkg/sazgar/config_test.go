package sazgar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 200*time.Millisecond, cfg.Probe.CPUSampleInterval)
	assert.Equal(t, 4096, cfg.Probe.ProcessCacheSize)
	assert.Equal(t, "/internal/metrics", cfg.InternalMetrics.Prometheus.Path)
	assert.False(t, cfg.InternalMetrics.Prometheus.Enabled())
}

func TestConfigFromYAML(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
log_level: DEBUG
profile_port: 6060
probe:
  cpu_sample_interval: 500ms
  virtual_fs_types:
    - proc
    - sysfs
internal_metrics:
  prometheus:
    port: 9090
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 6060, cfg.ProfilePort)
	assert.Equal(t, 500*time.Millisecond, cfg.Probe.CPUSampleInterval)
	assert.Equal(t, []string{"proc", "sysfs"}, cfg.Probe.VirtualFSTypes)
	assert.Equal(t, 9090, cfg.InternalMetrics.Prometheus.Port)
	assert.True(t, cfg.InternalMetrics.Prometheus.Enabled())
	// untouched values keep their defaults
	assert.Equal(t, 4096, cfg.Probe.ProcessCacheSize)
}

func TestConfigEnvOverridesYAML(t *testing.T) {
	t.Setenv("SAZGAR_LOG_LEVEL", "WARN")
	t.Setenv("SAZGAR_PROCESS_CACHE_SIZE", "128")

	cfg, err := LoadConfig(strings.NewReader(`log_level: DEBUG`))
	require.NoError(t, err)
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.Equal(t, 128, cfg.Probe.ProcessCacheSize)
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"bad log level", "log_level: CHATTY"},
		{"zero sample interval", "probe: {cpu_sample_interval: 0s}"},
		{"zero cache size", "probe: {process_cache_size: 0}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadConfig(strings.NewReader(tc.yaml))
			require.NoError(t, err)
			err = cfg.Validate()
			require.Error(t, err)
			var cerr ConfigError
			assert.ErrorAs(t, err, &cerr)
		})
	}
}
