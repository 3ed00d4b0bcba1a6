package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
)

func newEntry(index int, name string, products ...production.ItemRate) *chainEntry {
	return &chainEntry{
		index: index,
		node: production.NewProductionNode(
			production.NewRecipeInstantiation(name, "Desc_ConstructorMk1_C", 1),
			nil,
			products,
		),
	}
}

func TestMaterialize_UnknownSource(t *testing.T) {
	consumer := newEntry(0, "Recipe_IronPlate_C")
	claims := []claim{{source: "Recipe_Ghost_C", consumer: consumer, material: "Desc_IronIngot_C", amount: 30}}

	err := materialize([]*chainEntry{consumer}, claims)

	var sourceErr *production.SourceNodeNotFoundError
	require.ErrorAs(t, err, &sourceErr)
	assert.Equal(t, "Recipe_Ghost_C", sourceErr.Source)
	assert.Equal(t, []string{"Recipe_IronPlate_C"}, sourceErr.Available)
	assert.Equal(t, production.KindInternal, production.KindOf(err))
}

func TestMaterialize_ProducerWithoutProduct(t *testing.T) {
	producer := newEntry(0, "Recipe_IronRod_C", production.ItemRate{Item: "Desc_IronRod_C", Amount: 15})
	consumer := newEntry(1, "Recipe_IronPlate_C")
	claims := []claim{{source: "Recipe_IronRod_C", consumer: consumer, material: "Desc_IronIngot_C", amount: 30}}

	err := materialize([]*chainEntry{producer, consumer}, claims)

	var productErr *production.ProductNotFoundError
	require.ErrorAs(t, err, &productErr)
	assert.Equal(t, "Desc_IronIngot_C", productErr.Material)
	assert.Equal(t, "Recipe_IronRod_C", productErr.Source)
}

func TestMaterialize_LinksBothEnds(t *testing.T) {
	producer := newEntry(0, "Recipe_IngotIron_C", production.ItemRate{Item: "Desc_IronIngot_C", Amount: 30})
	consumer := newEntry(1, "Recipe_IronPlate_C")
	claims := []claim{
		{source: production.ExternalSource, consumer: producer, material: "Desc_OreIron_C", amount: 30},
		{source: "Recipe_IngotIron_C", consumer: consumer, material: "Desc_IronIngot_C", amount: 20},
	}

	err := materialize([]*chainEntry{producer, consumer}, claims)

	require.NoError(t, err)
	require.Len(t, producer.node.Outputs, 1)
	assert.Equal(t, producer.node.Outputs, consumer.node.Inputs)
	assert.True(t, producer.node.Inputs[0].IsExternal())
	assert.Equal(t, []production.ItemRate{{Item: "Desc_IronIngot_C", Amount: 10}}, producer.node.AvailableProducts)
	assert.False(t, producer.node.FullyConsumed)
	assert.True(t, consumer.node.FullyConsumed)
}
