package production

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors for recipe parsing and chain resolution

// ErrorKind groups domain errors by how a caller should present them
type ErrorKind string

const (
	KindFormat             ErrorKind = "format"
	KindUnknownReference   ErrorKind = "unknown_reference"
	KindDuplicateRecipe    ErrorKind = "duplicate_recipe"
	KindUnsatisfiableChain ErrorKind = "unsatisfiable_chain"
	KindInternal           ErrorKind = "internal"
	KindInvalidAmount      ErrorKind = "invalid_amount"
	KindUnknown            ErrorKind = "unknown"
)

// kinded is implemented by every error type in this package and in the transport package
type kinded interface {
	Kind() ErrorKind
}

// RecipeFormatError indicates a recipe line does not match the "name@efficiency#building": "count" shape
type RecipeFormatError struct {
	Input string
}

func (e *RecipeFormatError) Error() string {
	return fmt.Sprintf("invalid recipe format: %q", e.Input)
}

func (e *RecipeFormatError) Kind() ErrorKind { return KindFormat }

// InvalidBuildingError indicates a syntactically valid building name missing from the catalog
type InvalidBuildingError struct {
	Building string
}

func (e *InvalidBuildingError) Error() string {
	return fmt.Sprintf("unknown building: %s", e.Building)
}

func (e *InvalidBuildingError) Kind() ErrorKind { return KindUnknownReference }

// InvalidRecipeError indicates a syntactically valid recipe name missing from the catalog
type InvalidRecipeError struct {
	Recipe string
}

func (e *InvalidRecipeError) Error() string {
	return fmt.Sprintf("unknown recipe: %s", e.Recipe)
}

func (e *InvalidRecipeError) Kind() ErrorKind { return KindUnknownReference }

// DuplicateRecipeError indicates the same recipe was instantiated on more than one line.
// Each line is well formed on its own, so this is reported as its own kind rather than a format fault.
type DuplicateRecipeError struct {
	Recipe string
}

func (e *DuplicateRecipeError) Error() string {
	return fmt.Sprintf("recipe %s is listed more than once", e.Recipe)
}

func (e *DuplicateRecipeError) Kind() ErrorKind { return KindDuplicateRecipe }

// InvalidExternalInputError indicates an external input declaration with an unusable amount or item
type InvalidExternalInputError struct {
	Item   string
	Amount float64
}

func (e *InvalidExternalInputError) Error() string {
	if e.Item == "" {
		return "external input has no item"
	}
	return fmt.Sprintf("external input %s has invalid amount %g", e.Item, e.Amount)
}

func (e *InvalidExternalInputError) Kind() ErrorKind { return KindFormat }

// RecipeChainError indicates one or more instantiations could not have every ingredient resolved.
// Missing maps each unprocessed recipe name to the materials that had no producer, resource or feed.
type RecipeChainError struct {
	Unprocessed []string
	Missing     map[string][]string
}

func (e *RecipeChainError) Error() string {
	parts := make([]string, 0, len(e.Unprocessed))
	for _, name := range e.Unprocessed {
		if missing := e.Missing[name]; len(missing) > 0 {
			parts = append(parts, fmt.Sprintf("%s (missing %s)", name, strings.Join(missing, ", ")))
		} else {
			parts = append(parts, name)
		}
	}
	return fmt.Sprintf("could not resolve recipe chain, unprocessed recipes: %s", strings.Join(parts, "; "))
}

func (e *RecipeChainError) Kind() ErrorKind { return KindUnsatisfiableChain }

// MissingMaterials returns the distinct missing materials across all recipes, sorted
func (e *RecipeChainError) MissingMaterials() []string {
	seen := make(map[string]bool)
	result := make([]string, 0)
	for _, materials := range e.Missing {
		for _, m := range materials {
			if !seen[m] {
				seen[m] = true
				result = append(result, m)
			}
		}
	}
	sort.Strings(result)
	return result
}

// ProductNotFoundError indicates a resolved producer does not actually yield the claimed material
type ProductNotFoundError struct {
	Material string
	Source   string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found in recipe %s", e.Material, e.Source)
}

func (e *ProductNotFoundError) Kind() ErrorKind { return KindInternal }

// SourceNodeNotFoundError indicates a producer referenced by a claim is not among the resolved nodes
type SourceNodeNotFoundError struct {
	Source    string
	Material  string
	Available []string
}

func (e *SourceNodeNotFoundError) Error() string {
	return fmt.Sprintf("source node %s for %s not found (available: %s)",
		e.Source, e.Material, strings.Join(e.Available, ", "))
}

func (e *SourceNodeNotFoundError) Kind() ErrorKind { return KindInternal }

// KindOf classifies err, looking through wrapping
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindUnknown
}

// IsUserError reports whether err is caused by user input rather than an internal fault
func IsUserError(err error) bool {
	switch KindOf(err) {
	case KindFormat, KindUnknownReference, KindDuplicateRecipe, KindUnsatisfiableChain, KindInvalidAmount:
		return true
	default:
		return false
	}
}
