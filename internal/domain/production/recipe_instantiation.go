package production

import "math"

// RecipeInstantiation is one concrete use of a catalog recipe at a building, before resolution.
// Count is the number of building instances and may be fractional.
type RecipeInstantiation struct {
	Name     string
	Building string
	Count    float64
}

// NewRecipeInstantiation creates a new recipe instantiation
func NewRecipeInstantiation(name, building string, count float64) RecipeInstantiation {
	return RecipeInstantiation{
		Name:     name,
		Building: building,
		Count:    count,
	}
}

// ExternalInput is a finite supply of a material injected from outside the chain
type ExternalInput struct {
	Item   string
	Amount float64 // per minute
}

// NewExternalInput creates a new external input declaration
func NewExternalInput(item string, amount float64) ExternalInput {
	return ExternalInput{Item: item, Amount: amount}
}

// Validate checks the declaration is usable by the solver
func (e ExternalInput) Validate() error {
	if e.Item == "" || e.Amount < 0 || math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return &InvalidExternalInputError{Item: e.Item, Amount: e.Amount}
	}
	return nil
}
