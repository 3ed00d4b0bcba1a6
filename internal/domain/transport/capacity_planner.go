package transport

import (
	"fmt"
	"math"

	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
)

// tolerance absorbs floating-point noise in the remaining instance count
const tolerance = 1e-6

// InvalidAmountError indicates a non-positive throughput or a negative instance count
type InvalidAmountError struct {
	Field string
	Value float64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount for %s: %g", e.Field, e.Value)
}

func (e *InvalidAmountError) Kind() production.ErrorKind { return production.KindInvalidAmount }

// PlanResult is a capacity plan with the facts a caller needs to present it
type PlanResult struct {
	Class production.MaterialClass
	// Tiers[i] is how many producing instances route through a conveyance of tier i
	Tiers     []int
	Labels    []string
	Satisfied bool
}

// CapacityPlanner packs per-instance throughput into discrete conveyance tiers.
//
// The allocation is greedy and tier-ascending: each tier takes as many instances as it can
// carry beyond what the tier below already could, and the walk stops at the first tier that
// absorbs the remaining instances.
type CapacityPlanner struct {
	tiers      TierTable
	classifier production.MaterialClassifier
}

// NewCapacityPlanner creates a planner over the given tiers
func NewCapacityPlanner(tiers TierTable, classifier production.MaterialClassifier) *CapacityPlanner {
	return &CapacityPlanner{
		tiers:      tiers,
		classifier: classifier,
	}
}

// Plan computes per-tier instance assignments for one material class.
// When demand exceeds what every tier can carry, the full un-truncated assignment is returned.
func (p *CapacityPlanner) Plan(class production.MaterialClass, perInstanceAmount, instanceCount float64) ([]int, error) {
	result, err := p.PlanDetailed(class, perInstanceAmount, instanceCount)
	if err != nil {
		return nil, err
	}
	return result.Tiers, nil
}

// PlanForMaterial classifies material and plans its conveyance
func (p *CapacityPlanner) PlanForMaterial(material string, perInstanceAmount, instanceCount float64) (PlanResult, error) {
	return p.PlanDetailed(production.ClassOf(p.classifier, material), perInstanceAmount, instanceCount)
}

// PlanDetailed is Plan with the satisfaction flag and tier labels
func (p *CapacityPlanner) PlanDetailed(class production.MaterialClass, perInstanceAmount, instanceCount float64) (PlanResult, error) {
	if !(perInstanceAmount > 0) || math.IsInf(perInstanceAmount, 0) {
		return PlanResult{}, &InvalidAmountError{Field: "per-instance amount", Value: perInstanceAmount}
	}
	if !(instanceCount >= 0) || math.IsInf(instanceCount, 0) {
		return PlanResult{}, &InvalidAmountError{Field: "instance count", Value: instanceCount}
	}

	capacities := p.tiers.Capacities(class)
	result := PlanResult{
		Class:  class,
		Tiers:  make([]int, 0, len(capacities)),
		Labels: make([]string, 0, len(capacities)),
	}

	remaining := instanceCount
	previousMax := 0.0
	for i, capacity := range capacities {
		maxAtTier := math.Floor(capacity / perInstanceAmount)
		allowance := math.Max(maxAtTier-previousMax, 0)
		previousMax = maxAtTier

		assigned := math.Min(remaining, allowance)
		remaining -= assigned
		result.Labels = append(result.Labels, TierLabel(i))

		if remaining <= tolerance {
			result.Tiers = append(result.Tiers, int(math.Ceil(assigned-tolerance)))
			result.Satisfied = true
			return result, nil
		}
		result.Tiers = append(result.Tiers, int(assigned))
	}

	return result, nil
}
