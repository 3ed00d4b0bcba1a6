package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factory-planner-go/internal/application/production/services"
	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
	"github.com/andrescamacho/factory-planner-go/test/helpers"
)

func newParser() *services.RecipeParser {
	cat := helpers.NewCatalogBuilder().
		WithBuilding("Desc_Y_C").
		WithBuilding(helpers.Constructor).
		WithRecipe("Recipe_X_C", nil, helpers.Rates(helpers.Rate("Desc_Out_C", 1)), "Desc_Y_C").
		WithRecipe("Recipe_IronPlate_C", nil, helpers.Rates(helpers.Rate("Desc_IronPlate_C", 20)), helpers.Constructor).
		Build()
	return services.NewRecipeParser(cat, cat)
}

func TestRecipeParser_Parse(t *testing.T) {
	parser := newParser()

	recipe, err := parser.Parse(`"Recipe_X_C@100#Desc_Y_C": "1.2345"`)

	require.NoError(t, err)
	assert.Equal(t, "Recipe_X_C", recipe.Name)
	assert.Equal(t, "Desc_Y_C", recipe.Building)
	assert.Equal(t, 1.2345, recipe.Count)
}

func TestRecipeParser_AcceptedVariants(t *testing.T) {
	parser := newParser()

	tests := []struct {
		name  string
		line  string
		count float64
	}{
		{"trailing comma", `"Recipe_IronPlate_C@100#Desc_ConstructorMk1_C": "2",`, 2},
		{"surrounding whitespace", `   "Recipe_IronPlate_C@100#Desc_ConstructorMk1_C"  :   "2"   `, 2},
		{"fractional efficiency", `"Recipe_IronPlate_C@87.5#Desc_ConstructorMk1_C": "3"`, 3},
		{"leading dot count", `"Recipe_IronPlate_C@100#Desc_ConstructorMk1_C": ".5"`, 0.5},
		{"trailing dot count", `"Recipe_IronPlate_C@100#Desc_ConstructorMk1_C": "4."`, 4},
		{"zero count", `"Recipe_IronPlate_C@100#Desc_ConstructorMk1_C": "0"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe, err := parser.Parse(tt.line)

			require.NoError(t, err)
			assert.Equal(t, "Recipe_IronPlate_C", recipe.Name)
			assert.Equal(t, tt.count, recipe.Count)
		})
	}
}

func TestRecipeParser_RejectsMalformedLines(t *testing.T) {
	parser := newParser()

	lines := []string{
		"",
		"garbage",
		`"Recipe_X_C#Desc_Y_C": "1"`,
		`"Recipe_X_C@100Desc_Y_C": "1"`,
		`"Recipe_X_C@abc#Desc_Y_C": "1"`,
		`"Recipe_X_C@100#Desc_Y_C": "-1"`,
		`"Recipe_X_C@100#Desc_Y_C": "1e3"`,
		`"Recipe_X_C@100#Desc_Y_C": 1`,
		`"Recipe-X@100#Desc_Y_C": "1"`,
		`"Recipe_X_C@100#Desc_Y_C" "1"`,
		`"Recipe_X_C@100#Desc_Y_C": "1",,`,
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := parser.Parse(line)

			var formatErr *production.RecipeFormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, line, formatErr.Input)
		})
	}
}

func TestRecipeParser_UnknownBuilding(t *testing.T) {
	parser := newParser()

	_, err := parser.Parse(`"Recipe_X_C@100#Desc_Nope_C": "1"`)

	var buildingErr *production.InvalidBuildingError
	require.ErrorAs(t, err, &buildingErr)
	assert.Equal(t, "Desc_Nope_C", buildingErr.Building)
}

func TestRecipeParser_UnknownRecipe(t *testing.T) {
	parser := newParser()

	_, err := parser.Parse(`"Recipe_Nope_C@100#Desc_Y_C": "1"`)

	var recipeErr *production.InvalidRecipeError
	require.ErrorAs(t, err, &recipeErr)
	assert.Equal(t, "Recipe_Nope_C", recipeErr.Recipe)
}

func TestRecipeParser_BuildingCheckedBeforeRecipe(t *testing.T) {
	parser := newParser()

	_, err := parser.Parse(`"Recipe_Nope_C@100#Desc_Nope_C": "1"`)

	var buildingErr *production.InvalidBuildingError
	assert.ErrorAs(t, err, &buildingErr)
}

func TestFormatRecipeString_RoundTrips(t *testing.T) {
	parser := newParser()
	original := production.NewRecipeInstantiation("Recipe_IronPlate_C", helpers.Constructor, 2.75)

	line := services.FormatRecipeString(original, services.DefaultEfficiency)
	parsed, err := parser.Parse(line)

	require.NoError(t, err)
	assert.Equal(t, `"Recipe_IronPlate_C@100#Desc_ConstructorMk1_C": "2.75"`, line)
	assert.Equal(t, original, parsed)
}

func TestCachingRecipeParser(t *testing.T) {
	counting := &countingParser{next: newParser()}
	parser, err := services.NewCachingRecipeParser(counting, 2)
	require.NoError(t, err)

	good := `"Recipe_X_C@100#Desc_Y_C": "1"`
	bad := `"Recipe_Nope_C@100#Desc_Y_C": "1"`

	first, err := parser.Parse(good)
	require.NoError(t, err)
	second, err := parser.Parse(good)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, counting.calls)

	_, err = parser.Parse(bad)
	var recipeErr *production.InvalidRecipeError
	require.ErrorAs(t, err, &recipeErr)
	_, err = parser.Parse(bad)
	require.ErrorAs(t, err, &recipeErr)
	assert.Equal(t, 2, counting.calls)
	assert.Equal(t, 2, parser.Len())
}

func TestCachingRecipeParser_DefaultSize(t *testing.T) {
	parser, err := services.NewCachingRecipeParser(newParser(), 0)

	require.NoError(t, err)
	assert.Equal(t, 0, parser.Len())
}

type countingParser struct {
	next  services.RecipeLineParser
	calls int
}

func (p *countingParser) Parse(line string) (production.RecipeInstantiation, error) {
	p.calls++
	return p.next.Parse(line)
}
