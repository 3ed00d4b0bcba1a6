package transport_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
	"github.com/andrescamacho/factory-planner-go/internal/domain/transport"
)

func newPlanner() *transport.CapacityPlanner {
	return transport.NewCapacityPlanner(transport.DefaultTierTable(), production.DefaultMaterialTable(nil, nil))
}

func TestPlan_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		class     production.MaterialClass
		amount    float64
		count     float64
		expected  []int
		satisfied bool
	}{
		{"spills over two tiers", production.ClassSolid, 80, 3, []int{0, 1, 2}, true},
		{"fits lowest tier", production.ClassSolid, 30, 2, []int{2}, true},
		{"fractional count rounds up", production.ClassSolid, 30, 2.5, []int{2, 1}, true},
		{"no instances", production.ClassSolid, 30, 0, []int{0}, true},
		{"exactly one tier capacity", production.ClassSolid, 60, 1, []int{1}, true},
		{"exceeds every belt", production.ClassSolid, 1500, 1, []int{0, 0, 0, 0, 0, 0}, false},
		{"fluid uses pipes", production.ClassFluid, 150, 3, []int{2, 1}, true},
		{"fluid exceeds every pipe", production.ClassFluid, 700, 1, []int{0, 0}, false},
	}

	planner := newPlanner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := planner.PlanDetailed(tt.class, tt.amount, tt.count)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Tiers)
			assert.Equal(t, tt.satisfied, result.Satisfied)
			assert.Len(t, result.Labels, len(result.Tiers))

			tiers, err := planner.Plan(tt.class, tt.amount, tt.count)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tiers)
		})
	}
}

func TestPlan_RejectsInvalidAmounts(t *testing.T) {
	planner := newPlanner()

	tests := []struct {
		name   string
		amount float64
		count  float64
		field  string
	}{
		{"zero amount", 0, 1, "per-instance amount"},
		{"negative amount", -5, 1, "per-instance amount"},
		{"nan amount", math.NaN(), 1, "per-instance amount"},
		{"infinite amount", math.Inf(1), 1, "per-instance amount"},
		{"negative count", 30, -1, "instance count"},
		{"nan count", 30, math.NaN(), "instance count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := planner.Plan(production.ClassSolid, tt.amount, tt.count)

			var amountErr *transport.InvalidAmountError
			require.ErrorAs(t, err, &amountErr)
			assert.Equal(t, tt.field, amountErr.Field)
			assert.Equal(t, production.KindInvalidAmount, production.KindOf(err))
		})
	}
}

func TestPlanForMaterial_ClassifiesMaterial(t *testing.T) {
	planner := newPlanner()

	water, err := planner.PlanForMaterial("Desc_Water_C", 150, 3)
	require.NoError(t, err)
	assert.Equal(t, production.ClassFluid, water.Class)
	assert.Equal(t, []int{2, 1}, water.Tiers)

	plates, err := planner.PlanForMaterial("Desc_IronPlate_C", 80, 3)
	require.NoError(t, err)
	assert.Equal(t, production.ClassSolid, plates.Class)
	assert.Equal(t, []string{"Mk1", "Mk2", "Mk3"}, plates.Labels)
}

func TestPlan_Properties(t *testing.T) {
	planner := newPlanner()
	capacities := transport.DefaultBeltCapacities
	amounts := []float64{1, 7.5, 25, 45, 60, 100, 250, 480, 1199}

	for _, amount := range amounts {
		previousLen := 0
		for count := 1; count <= 40; count++ {
			result, err := planner.PlanDetailed(production.ClassSolid, amount, float64(count))
			require.NoError(t, err)

			sum := 0
			for i, n := range result.Tiers {
				sum += n
				if n > 0 {
					assert.LessOrEqual(t, amount, capacities[i], "tier %d carries an instance it cannot hold", i)
				}
			}

			if result.Satisfied {
				assert.Equal(t, count, sum, "amount %g count %d", amount, count)
			} else {
				assert.Len(t, result.Tiers, len(capacities))
				assert.Less(t, sum, count)
			}

			assert.GreaterOrEqual(t, len(result.Tiers), previousLen, "more instances never need fewer tiers")
			previousLen = len(result.Tiers)
		}
	}
}

func TestPlan_CustomTiers(t *testing.T) {
	tiers, err := transport.NewTierTable([]float64{100, 200}, []float64{50})
	require.NoError(t, err)
	planner := transport.NewCapacityPlanner(tiers, production.DefaultMaterialTable(nil, nil))

	result, err := planner.PlanDetailed(production.ClassSolid, 50, 5)

	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, result.Tiers)
	assert.False(t, result.Satisfied)
}

func TestNewTierTable_Validation(t *testing.T) {
	tests := []struct {
		name  string
		belts []float64
		pipes []float64
	}{
		{"empty belts", nil, []float64{300}},
		{"empty pipes", []float64{60}, nil},
		{"non-positive", []float64{0, 60}, []float64{300}},
		{"descending", []float64{120, 60}, []float64{300}},
		{"repeated", []float64{60, 60}, []float64{300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := transport.NewTierTable(tt.belts, tt.pipes)
			assert.Error(t, err)
		})
	}
}

func TestNewTierTable_CopiesInput(t *testing.T) {
	belts := []float64{60, 120}
	tiers, err := transport.NewTierTable(belts, []float64{300})
	require.NoError(t, err)

	belts[0] = 999

	assert.Equal(t, 60.0, tiers.Capacities(production.ClassSolid)[0])
	assert.Equal(t, []float64{300}, tiers.Capacities(production.ClassFluid))
	assert.Equal(t, "Mk1", transport.TierLabel(0))
}
