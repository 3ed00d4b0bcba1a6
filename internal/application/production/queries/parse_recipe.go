package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/factory-planner-go/internal/application/common"
	"github.com/andrescamacho/factory-planner-go/internal/application/production/services"
	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
)

// ParseRecipeQuery parses a single line of recipe notation
type ParseRecipeQuery struct {
	Line string
}

func (q *ParseRecipeQuery) OperationKind() string { return common.KindParse }

// ParseRecipeResponse contains the parsed instantiation
type ParseRecipeResponse struct {
	Recipe production.RecipeInstantiation
}

// ParseRecipeHandler handles the ParseRecipe query
type ParseRecipeHandler struct {
	parser services.RecipeLineParser
}

// NewParseRecipeHandler creates a new ParseRecipeHandler
func NewParseRecipeHandler(parser services.RecipeLineParser) *ParseRecipeHandler {
	return &ParseRecipeHandler{parser: parser}
}

// Handle executes the ParseRecipe query
func (h *ParseRecipeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ParseRecipeQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ParseRecipeQuery")
	}

	recipe, err := h.parser.Parse(query.Line)
	if err != nil {
		return nil, err
	}

	return &ParseRecipeResponse{Recipe: recipe}, nil
}
