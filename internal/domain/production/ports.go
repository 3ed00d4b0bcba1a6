package production

import "sort"

// Recipe is a catalog entry. Rates are per minute for one building running at 100%.
type Recipe struct {
	Name        string     `yaml:"name" json:"name" validate:"required,identifier"`
	DisplayName string     `yaml:"display_name" json:"display_name"`
	Ingredients []ItemRate `yaml:"ingredients" json:"ingredients" validate:"dive"`
	Products    []ItemRate `yaml:"products" json:"products" validate:"min=1,dive"`
	Buildings   []string   `yaml:"buildings" json:"buildings" validate:"dive,identifier"`
}

// Building is a catalog entry for a production building
type Building struct {
	Name        string  `yaml:"name" json:"name" validate:"required,identifier"`
	DisplayName string  `yaml:"display_name" json:"display_name"`
	PowerMW     float64 `yaml:"power_mw" json:"power_mw" validate:"gte=0"`
}

// RecipeCatalog provides read-only recipe lookups
type RecipeCatalog interface {
	Recipe(name string) (Recipe, bool)
}

// BuildingCatalog provides read-only building lookups
type BuildingCatalog interface {
	Building(name string) (Building, bool)
}

// Catalog is an in-memory RecipeCatalog and BuildingCatalog
type Catalog struct {
	recipes   map[string]Recipe
	buildings map[string]Building
}

// NewCatalog creates a catalog. Later entries replace earlier ones with the same name.
func NewCatalog(recipes []Recipe, buildings []Building) *Catalog {
	c := &Catalog{
		recipes:   make(map[string]Recipe, len(recipes)),
		buildings: make(map[string]Building, len(buildings)),
	}
	for _, r := range recipes {
		c.recipes[r.Name] = r
	}
	for _, b := range buildings {
		c.buildings[b.Name] = b
	}
	return c
}

// Recipe looks up a recipe by name
func (c *Catalog) Recipe(name string) (Recipe, bool) {
	r, ok := c.recipes[name]
	return r, ok
}

// Building looks up a building by name
func (c *Catalog) Building(name string) (Building, bool) {
	b, ok := c.buildings[name]
	return b, ok
}

// Recipes returns all recipes sorted by name
func (c *Catalog) Recipes() []Recipe {
	result := make([]Recipe, 0, len(c.recipes))
	for _, r := range c.recipes {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Buildings returns all buildings sorted by name
func (c *Catalog) Buildings() []Building {
	result := make([]Building, 0, len(c.buildings))
	for _, b := range c.buildings {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Scale returns rates multiplied by count, merging repeated items in first-seen order
func Scale(rates []ItemRate, count float64) []ItemRate {
	index := make(map[string]int, len(rates))
	result := make([]ItemRate, 0, len(rates))
	for _, r := range rates {
		if i, ok := index[r.Item]; ok {
			result[i].Amount += r.Amount * count
			continue
		}
		index[r.Item] = len(result)
		result = append(result, ItemRate{Item: r.Item, Amount: r.Amount * count})
	}
	return result
}
