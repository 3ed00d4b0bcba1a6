package services

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
)

// DefaultParseCacheSize is the number of distinct lines remembered by a CachingRecipeParser
const DefaultParseCacheSize = 1024

type parseResult struct {
	recipe production.RecipeInstantiation
	err    error
}

// CachingRecipeParser memoises another parser. Parsing is a pure function of the line and the
// catalogs, so failures are cached too. Safe for concurrent use.
type CachingRecipeParser struct {
	next  RecipeLineParser
	cache *lru.Cache[string, parseResult]
}

// NewCachingRecipeParser wraps next with an LRU of the given size
func NewCachingRecipeParser(next RecipeLineParser, size int) (*CachingRecipeParser, error) {
	if size <= 0 {
		size = DefaultParseCacheSize
	}
	cache, err := lru.New[string, parseResult](size)
	if err != nil {
		return nil, err
	}
	return &CachingRecipeParser{
		next:  next,
		cache: cache,
	}, nil
}

// Parse returns the cached result for line, parsing it on a miss
func (p *CachingRecipeParser) Parse(line string) (production.RecipeInstantiation, error) {
	if cached, ok := p.cache.Get(line); ok {
		return cached.recipe, cached.err
	}
	recipe, err := p.next.Parse(line)
	p.cache.Add(line, parseResult{recipe: recipe, err: err})
	return recipe, err
}

// Len returns the number of cached lines
func (p *CachingRecipeParser) Len() int {
	return p.cache.Len()
}
