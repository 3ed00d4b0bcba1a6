package services

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
)

// DefaultEfficiency is written by FormatRecipeString when no efficiency is given
const DefaultEfficiency = 100.0

// recipeLinePattern matches `"Recipe_Foo_C@100#Desc_Bar_C": "1.5"` with an optional trailing comma.
// Groups: recipe, efficiency, building, count.
var recipeLinePattern = regexp.MustCompile(
	`^\s*"([A-Za-z0-9_]+)@([0-9]+(?:\.[0-9]*)?|\.[0-9]+)#([A-Za-z0-9_]+)"\s*:\s*"([0-9]+(?:\.[0-9]*)?|\.[0-9]+)"\s*,?\s*$`,
)

// RecipeLineParser turns one line of recipe notation into an instantiation
type RecipeLineParser interface {
	Parse(line string) (production.RecipeInstantiation, error)
}

// RecipeParser validates recipe lines against read-only recipe and building catalogs
type RecipeParser struct {
	recipes   production.RecipeCatalog
	buildings production.BuildingCatalog
}

// NewRecipeParser creates a new recipe parser
func NewRecipeParser(recipes production.RecipeCatalog, buildings production.BuildingCatalog) *RecipeParser {
	return &RecipeParser{
		recipes:   recipes,
		buildings: buildings,
	}
}

// Parse parses a line such as `"Recipe_Foo_C@100#Desc_Bar_C": "1.5",`.
// Efficiency is checked to be numeric but does not scale the count.
func (p *RecipeParser) Parse(line string) (production.RecipeInstantiation, error) {
	matches := recipeLinePattern.FindStringSubmatch(line)
	if matches == nil {
		return production.RecipeInstantiation{}, &production.RecipeFormatError{Input: line}
	}

	recipeName, efficiencyText, buildingName, countText := matches[1], matches[2], matches[3], matches[4]

	if _, err := strconv.ParseFloat(efficiencyText, 64); err != nil {
		return production.RecipeInstantiation{}, &production.RecipeFormatError{Input: line}
	}
	count, err := strconv.ParseFloat(countText, 64)
	if err != nil {
		return production.RecipeInstantiation{}, &production.RecipeFormatError{Input: line}
	}

	if _, ok := p.buildings.Building(buildingName); !ok {
		return production.RecipeInstantiation{}, &production.InvalidBuildingError{Building: buildingName}
	}
	if _, ok := p.recipes.Recipe(recipeName); !ok {
		return production.RecipeInstantiation{}, &production.InvalidRecipeError{Recipe: recipeName}
	}

	return production.NewRecipeInstantiation(recipeName, buildingName, count), nil
}

// FormatRecipeString renders an instantiation back into recipe notation
func FormatRecipeString(recipe production.RecipeInstantiation, efficiency float64) string {
	return fmt.Sprintf(`"%s@%s#%s": "%s"`,
		recipe.Name,
		strconv.FormatFloat(efficiency, 'f', -1, 64),
		recipe.Building,
		strconv.FormatFloat(recipe.Count, 'f', -1, 64),
	)
}
