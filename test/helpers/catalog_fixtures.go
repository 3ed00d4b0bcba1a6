package helpers

import (
	"github.com/andrescamacho/factory-planner-go/internal/application/production/services"
	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
)

// Building names used by the test catalogs
const (
	Smelter     = "Desc_SmelterMk1_C"
	Constructor = "Desc_ConstructorMk1_C"
	Assembler   = "Desc_AssemblerMk1_C"
	Refinery    = "Desc_OilRefinery_C"
)

// CatalogBuilder assembles small synthetic catalogs for tests
type CatalogBuilder struct {
	recipes   []production.Recipe
	buildings []production.Building
}

// NewCatalogBuilder creates an empty builder
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{}
}

// WithBuilding adds a building with no display name or power draw
func (b *CatalogBuilder) WithBuilding(name string) *CatalogBuilder {
	b.buildings = append(b.buildings, production.Building{Name: name})
	return b
}

// WithRecipe adds a recipe made in the given buildings
func (b *CatalogBuilder) WithRecipe(name string, ingredients, products []production.ItemRate, buildings ...string) *CatalogBuilder {
	b.recipes = append(b.recipes, production.Recipe{
		Name:        name,
		Ingredients: ingredients,
		Products:    products,
		Buildings:   buildings,
	})
	return b
}

// Build returns the catalog
func (b *CatalogBuilder) Build() *production.Catalog {
	return production.NewCatalog(b.recipes, b.buildings)
}

// Rate is shorthand for an ItemRate
func Rate(item string, amount float64) production.ItemRate {
	return production.ItemRate{Item: item, Amount: amount}
}

// Rates is shorthand for a slice of ItemRates
func Rates(rates ...production.ItemRate) []production.ItemRate {
	return rates
}

// IronChainCatalog returns a catalog covering iron smelting up to reinforced plates,
// a two-recipe loop with no anchor, and one refinery recipe with a fluid by-product.
func IronChainCatalog() *production.Catalog {
	return NewCatalogBuilder().
		WithBuilding(Smelter).
		WithBuilding(Constructor).
		WithBuilding(Assembler).
		WithBuilding(Refinery).
		WithRecipe("Recipe_IngotIron_C",
			Rates(Rate("Desc_OreIron_C", 30)),
			Rates(Rate("Desc_IronIngot_C", 30)),
			Smelter).
		WithRecipe("Recipe_IronPlate_C",
			Rates(Rate("Desc_IronIngot_C", 30)),
			Rates(Rate("Desc_IronPlate_C", 20)),
			Constructor).
		WithRecipe("Recipe_IronRod_C",
			Rates(Rate("Desc_IronIngot_C", 15)),
			Rates(Rate("Desc_IronRod_C", 15)),
			Constructor).
		WithRecipe("Recipe_Screw_C",
			Rates(Rate("Desc_IronRod_C", 10)),
			Rates(Rate("Desc_IronScrew_C", 40)),
			Constructor).
		WithRecipe("Recipe_IronPlateReinforced_C",
			Rates(Rate("Desc_IronPlate_C", 30), Rate("Desc_IronScrew_C", 60)),
			Rates(Rate("Desc_IronPlateReinforced_C", 5)),
			Assembler).
		WithRecipe("Recipe_LoopA_C",
			Rates(Rate("Desc_LoopB_C", 10)),
			Rates(Rate("Desc_LoopA_C", 10)),
			Constructor).
		WithRecipe("Recipe_LoopB_C",
			Rates(Rate("Desc_LoopA_C", 10)),
			Rates(Rate("Desc_LoopB_C", 10)),
			Constructor).
		WithRecipe("Recipe_Plastic_C",
			Rates(Rate("Desc_LiquidOil_C", 30)),
			Rates(Rate("Desc_Plastic_C", 20), Rate("Desc_HeavyOilResidue_C", 10)),
			Refinery).
		Build()
}

// RecipeLine renders a recipe line at 100% efficiency
func RecipeLine(recipe, building string, count float64) string {
	return services.FormatRecipeString(production.NewRecipeInstantiation(recipe, building, count), services.DefaultEfficiency)
}

// NewTestSolver returns a solver over cat with the built-in material tables
func NewTestSolver(cat *production.Catalog) *services.ChainSolver {
	return services.NewChainSolver(
		services.NewRecipeParser(cat, cat),
		cat,
		production.DefaultMaterialTable(nil, nil),
	)
}

// NodeByName returns the node for recipe, or nil
func NodeByName(nodes []*production.ProductionNode, recipe string) *production.ProductionNode {
	for _, n := range nodes {
		if n.Name() == recipe {
			return n
		}
	}
	return nil
}
