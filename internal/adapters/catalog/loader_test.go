package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factory-planner-go/internal/adapters/catalog"
)

func TestDefault_IsValid(t *testing.T) {
	cat, err := catalog.Default()

	require.NoError(t, err)
	recipe, ok := cat.Recipe("Recipe_IronPlate_C")
	require.True(t, ok)
	assert.Equal(t, "Desc_IronIngot_C", recipe.Ingredients[0].Item)
	assert.Equal(t, 20.0, recipe.Products[0].Amount)

	_, ok = cat.Building("Desc_ConstructorMk1_C")
	assert.True(t, ok)
	assert.NotPanics(t, func() { catalog.MustDefault() })
}

func TestDecode_JSONDocument(t *testing.T) {
	cat, err := catalog.Decode([]byte(`{"buildings": [{"name": "Desc_ConstructorMk1_C", "power_mw": 4}], ` +
		`"recipes": [{"name": "Recipe_Wire_C", "ingredients": [{"item": "Desc_CopperIngot_C", "amount": 15}], ` +
		`"products": [{"item": "Desc_Wire_C", "amount": 30}], "buildings": ["Desc_ConstructorMk1_C"]}]}`))

	require.NoError(t, err)
	_, ok := cat.Recipe("Recipe_Wire_C")
	assert.True(t, ok)
}

func TestDecode_RejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name     string
		document string
		message  string
	}{
		{
			name:     "unknown field",
			document: "buildings: []\nrecipes: []\nextras: true\n",
			message:  "failed to decode catalog",
		},
		{
			name: "bad identifier",
			document: `
buildings: [{ name: Desc_ConstructorMk1_C }]
recipes:
  - { name: "Recipe Wire", products: [{ item: Desc_Wire_C, amount: 30 }], buildings: [Desc_ConstructorMk1_C] }
`,
			message: "invalid catalog",
		},
		{
			name: "no products",
			document: `
buildings: [{ name: Desc_ConstructorMk1_C }]
recipes:
  - { name: Recipe_Wire_C, products: [], buildings: [Desc_ConstructorMk1_C] }
`,
			message: "invalid catalog",
		},
		{
			name: "non-positive rate",
			document: `
buildings: [{ name: Desc_ConstructorMk1_C }]
recipes:
  - { name: Recipe_Wire_C, products: [{ item: Desc_Wire_C, amount: 0 }], buildings: [Desc_ConstructorMk1_C] }
`,
			message: "invalid catalog",
		},
		{
			name: "duplicate recipe",
			document: `
buildings: [{ name: Desc_ConstructorMk1_C }]
recipes:
  - { name: Recipe_Wire_C, products: [{ item: Desc_Wire_C, amount: 30 }], buildings: [Desc_ConstructorMk1_C] }
  - { name: Recipe_Wire_C, products: [{ item: Desc_Wire_C, amount: 30 }], buildings: [Desc_ConstructorMk1_C] }
`,
			message: "duplicate recipe Recipe_Wire_C",
		},
		{
			name: "duplicate building",
			document: `
buildings: [{ name: Desc_ConstructorMk1_C }, { name: Desc_ConstructorMk1_C }]
recipes: []
`,
			message: "duplicate building Desc_ConstructorMk1_C",
		},
		{
			name: "unknown building reference",
			document: `
buildings: [{ name: Desc_ConstructorMk1_C }]
recipes:
  - { name: Recipe_Wire_C, products: [{ item: Desc_Wire_C, amount: 30 }], buildings: [Desc_SmelterMk1_C] }
`,
			message: "refers to unknown building Desc_SmelterMk1_C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Decode([]byte(tt.document))
			assert.ErrorContains(t, err, tt.message)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
buildings: [{ name: Desc_SmelterMk1_C, display_name: Smelter, power_mw: 4 }]
recipes:
  - name: Recipe_IngotIron_C
    ingredients: [{ item: Desc_OreIron_C, amount: 30 }]
    products: [{ item: Desc_IronIngot_C, amount: 30 }]
    buildings: [Desc_SmelterMk1_C]
`), 0o600))

	cat, err := catalog.Load(path)

	require.NoError(t, err)
	assert.Len(t, cat.Recipes(), 1)
	assert.Equal(t, "Smelter", cat.Buildings()[0].DisplayName)

	_, err = catalog.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read catalog")
}
