package config

// TransportConfig holds the conveyance tier tables, ascending by capacity (per minute)
type TransportConfig struct {
	BeltCapacities []float64 `mapstructure:"belt_capacities" validate:"min=1,ascending"`
	PipeCapacities []float64 `mapstructure:"pipe_capacities" validate:"min=1,ascending"`
}
