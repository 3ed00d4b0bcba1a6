package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
)

func TestLinkID_EqualFieldsGiveEqualIDs(t *testing.T) {
	a := production.NewMaterialLink("Recipe_IngotIron_C", "Recipe_IronPlate_C", "Desc_IronIngot_C", 30)
	b := production.NewMaterialLink("Recipe_IngotIron_C", "Recipe_IronPlate_C", "Desc_IronIngot_C", 30)

	assert.Equal(t, a.ID(), b.ID())
	assert.Equal(t, production.LinkID("Recipe_IngotIron_C", "Recipe_IronPlate_C", "Desc_IronIngot_C", 30), a.ID())
}

func TestLinkID_AnyFieldChangesID(t *testing.T) {
	base := production.LinkID("A", "B", "M", 1.5)

	assert.NotEqual(t, base, production.LinkID("X", "B", "M", 1.5))
	assert.NotEqual(t, base, production.LinkID("A", "X", "M", 1.5))
	assert.NotEqual(t, base, production.LinkID("A", "B", "X", 1.5))
	assert.NotEqual(t, base, production.LinkID("A", "B", "M", 1.25))
}

func TestLinkID_FieldsCannotBleedIntoEachOther(t *testing.T) {
	// Concatenation without a separator would make these identical
	assert.NotEqual(t,
		production.LinkID("AB", "C", "M", 1),
		production.LinkID("A", "BC", "M", 1),
	)
}

func TestMaterialLink_ExternalAndSurplusMarkers(t *testing.T) {
	external := production.NewMaterialLink(production.ExternalSource, "Recipe_IngotIron_C", "Desc_OreIron_C", 30)
	surplus := production.NewMaterialLink("Recipe_IngotIron_C", production.SurplusSink, "Desc_IronIngot_C", 10)
	internal := production.NewMaterialLink("Recipe_IngotIron_C", "Recipe_IronPlate_C", "Desc_IronIngot_C", 30)

	assert.True(t, external.IsExternal())
	assert.False(t, external.IsSurplus())
	assert.True(t, surplus.IsSurplus())
	assert.False(t, surplus.IsExternal())
	assert.False(t, internal.IsExternal())
	assert.False(t, internal.IsSurplus())
}
