package config

// CatalogConfig holds game-data catalog settings
type CatalogConfig struct {
	// Path to a YAML or JSON catalog file; empty uses the built-in catalog
	Path string `mapstructure:"path"`

	// Number of parsed recipe lines kept in memory
	ParseCacheSize int `mapstructure:"parse_cache_size" validate:"min=1"`
}

// MaterialsConfig extends the built-in material membership tables
type MaterialsConfig struct {
	ExtraNaturalResources []string `mapstructure:"extra_natural_resources" validate:"dive,required"`
	ExtraFluids           []string `mapstructure:"extra_fluids" validate:"dive,required"`
}
