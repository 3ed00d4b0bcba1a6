package transport

import (
	"fmt"

	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
)

// Default conveyance capacities in items (or m³) per minute, ascending by tier
var (
	DefaultBeltCapacities = []float64{60, 120, 270, 480, 780, 1200}
	DefaultPipeCapacities = []float64{300, 600}
)

// TierTable holds the ascending capacities for belts and pipes
type TierTable struct {
	Belts []float64
	Pipes []float64
}

// DefaultTierTable returns the built-in belt and pipe tiers
func DefaultTierTable() TierTable {
	return TierTable{
		Belts: append([]float64{}, DefaultBeltCapacities...),
		Pipes: append([]float64{}, DefaultPipeCapacities...),
	}
}

// NewTierTable creates a table, rejecting empty, non-positive or non-ascending tiers
func NewTierTable(belts, pipes []float64) (TierTable, error) {
	if err := validateTiers("belt", belts); err != nil {
		return TierTable{}, err
	}
	if err := validateTiers("pipe", pipes); err != nil {
		return TierTable{}, err
	}
	return TierTable{
		Belts: append([]float64{}, belts...),
		Pipes: append([]float64{}, pipes...),
	}, nil
}

// Capacities returns the tiers used for the given class
func (t TierTable) Capacities(class production.MaterialClass) []float64 {
	if class == production.ClassFluid {
		return t.Pipes
	}
	return t.Belts
}

// TierLabel returns the display name of a tier index ("Mk1" for index 0)
func TierLabel(index int) string {
	return fmt.Sprintf("Mk%d", index+1)
}

func validateTiers(kind string, tiers []float64) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%s tiers must not be empty", kind)
	}
	for i, c := range tiers {
		if c <= 0 {
			return fmt.Errorf("%s tier %s has non-positive capacity %g", kind, TierLabel(i), c)
		}
		if i > 0 && c <= tiers[i-1] {
			return fmt.Errorf("%s tier %s capacity %g is not above %s", kind, TierLabel(i), c, TierLabel(i-1))
		}
	}
	return nil
}
