package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factory-planner-go/internal/infrastructure/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSetDefaults(t *testing.T) {
	cfg := &config.Config{}

	config.SetDefaults(cfg)

	assert.Equal(t, config.DefaultParseCacheSize, cfg.Catalog.ParseCacheSize)
	assert.Equal(t, []float64{60, 120, 270, 480, 780, 1200}, cfg.Transport.BeltCapacities)
	assert.Equal(t, []float64{300, 600}, cfg.Transport.PipeCapacities)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.False(t, cfg.Metrics.Enabled)
	assert.NoError(t, config.ValidateConfig(cfg))
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
catalog:
  path: /data/catalog.yaml
  parse_cache_size: 64
transport:
  belt_capacities: [100, 200]
materials:
  extra_fluids: [Desc_Slurry_C]
logging:
  level: debug
  format: json
metrics:
  enabled: true
  textfile_path: /tmp/planner.prom
`)

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "/data/catalog.yaml", cfg.Catalog.Path)
	assert.Equal(t, 64, cfg.Catalog.ParseCacheSize)
	assert.Equal(t, []float64{100, 200}, cfg.Transport.BeltCapacities)
	assert.Equal(t, []float64{300, 600}, cfg.Transport.PipeCapacities)
	assert.Equal(t, []string{"Desc_Slurry_C"}, cfg.Materials.ExtraFluids)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/tmp/planner.prom", cfg.Metrics.TextfilePath)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: info\n")
	t.Setenv("FP_LOGGING_LEVEL", "error")
	t.Setenv("FP_CATALOG_PARSE_CACHE_SIZE", "16")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 16, cfg.Catalog.ParseCacheSize)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"descending belts", "transport:\n  belt_capacities: [120, 60]\n"},
		{"unknown log level", "logging:\n  level: loud\n"},
		{"unknown output", "logging:\n  output: syslog\n"},
		{"empty extra fluid", "materials:\n  extra_fluids: [\"\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, tt.body))
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestLoadConfigOrDefault_FallsBack(t *testing.T) {
	cfg := config.LoadConfigOrDefault(writeConfig(t, "logging:\n  level: loud\n"))

	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidator_Ascending(t *testing.T) {
	v := config.NewValidator()

	valid := config.TransportConfig{BeltCapacities: []float64{60, 120}, PipeCapacities: []float64{300}}
	assert.NoError(t, v.Validate(valid))

	tests := map[string]config.TransportConfig{
		"repeated":     {BeltCapacities: []float64{60, 60}, PipeCapacities: []float64{300}},
		"non-positive": {BeltCapacities: []float64{0, 60}, PipeCapacities: []float64{300}},
		"empty":        {BeltCapacities: []float64{}, PipeCapacities: []float64{300}},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			err := v.Validate(cfg)
			assert.ErrorContains(t, err, "validation failed")
		})
	}
}
