package config

// MetricsConfig holds metrics collection configuration
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active
	Enabled bool `mapstructure:"enabled"`

	// File written in the node-exporter textfile format after each run (optional)
	TextfilePath string `mapstructure:"textfile_path"`
}
