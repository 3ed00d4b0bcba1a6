package config

import (
	"github.com/andrescamacho/factory-planner-go/internal/domain/transport"
)

// DefaultParseCacheSize is the default number of memoised recipe lines
const DefaultParseCacheSize = 1024

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Catalog defaults
	if cfg.Catalog.ParseCacheSize == 0 {
		cfg.Catalog.ParseCacheSize = DefaultParseCacheSize
	}

	// Transport defaults
	if len(cfg.Transport.BeltCapacities) == 0 {
		cfg.Transport.BeltCapacities = append([]float64{}, transport.DefaultBeltCapacities...)
	}
	if len(cfg.Transport.PipeCapacities) == 0 {
		cfg.Transport.PipeCapacities = append([]float64{}, transport.DefaultPipeCapacities...)
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}
