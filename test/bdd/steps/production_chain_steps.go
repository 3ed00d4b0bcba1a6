package steps

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/factory-planner-go/internal/application/production/services"
	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
	"github.com/andrescamacho/factory-planner-go/internal/domain/transport"
	"github.com/andrescamacho/factory-planner-go/test/helpers"
)

type productionChainContext struct {
	catalog  *production.Catalog
	parser   *services.RecipeParser
	lines    []string
	external []production.ExternalInput

	parsed production.RecipeInstantiation
	nodes  []*production.ProductionNode
	floors []services.Floor
	err    error
}

func (pc *productionChainContext) reset() {
	pc.catalog = nil
	pc.parser = nil
	pc.lines = nil
	pc.external = nil
	pc.parsed = production.RecipeInstantiation{}
	pc.nodes = nil
	pc.floors = nil
	pc.err = nil
}

// Setup steps

func (pc *productionChainContext) theIronChainCatalog() error {
	pc.catalog = helpers.IronChainCatalog()
	pc.parser = services.NewRecipeParser(pc.catalog, pc.catalog)
	return nil
}

func (pc *productionChainContext) theRecipeLines(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		count, err := strconv.ParseFloat(row.Cells[2].Value, 64)
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", row.Cells[2].Value, err)
		}
		pc.lines = append(pc.lines, helpers.RecipeLine(row.Cells[0].Value, row.Cells[1].Value, count))
	}
	return nil
}

func (pc *productionChainContext) anExternalInputOf(amount float64, item string) error {
	pc.external = append(pc.external, production.NewExternalInput(item, amount))
	return nil
}

// Action steps

func (pc *productionChainContext) iParseTheLine(line string) error {
	pc.parsed, pc.err = pc.parser.Parse(line)
	return nil
}

func (pc *productionChainContext) iSolveTheChain() error {
	solver := helpers.NewTestSolver(pc.catalog)
	pc.nodes, pc.err = solver.Solve(pc.lines, pc.external)
	if pc.err == nil {
		floors := services.NewFloorPlanner(transport.NewCapacityPlanner(transport.DefaultTierTable(), production.DefaultMaterialTable(nil, nil)))
		pc.floors = floors.Group(pc.nodes)
	}
	return nil
}

// Parser assertions

func (pc *productionChainContext) theParsedRecipeShouldBe(recipe, building string, count float64) error {
	if pc.err != nil {
		return fmt.Errorf("expected parse to succeed but got: %v", pc.err)
	}
	if pc.parsed.Name != recipe || pc.parsed.Building != building || pc.parsed.Count != count {
		return fmt.Errorf("expected %s @ %s x%g but got %s @ %s x%g",
			recipe, building, count, pc.parsed.Name, pc.parsed.Building, pc.parsed.Count)
	}
	return nil
}

func (pc *productionChainContext) theCanonicalFormShouldBe(expected string) error {
	actual := services.FormatRecipeString(pc.parsed, services.DefaultEfficiency)
	if actual != expected {
		return fmt.Errorf("expected canonical form %s but got %s", expected, actual)
	}
	return nil
}

// Solver assertions

func (pc *productionChainContext) theOperationShouldFailWithError(kind string) error {
	if pc.err == nil {
		return fmt.Errorf("expected a %s error but the operation succeeded", kind)
	}
	if actual := production.KindOf(pc.err); string(actual) != kind {
		return fmt.Errorf("expected a %s error but got %s: %v", kind, actual, pc.err)
	}
	return nil
}

func (pc *productionChainContext) theSolveShouldSucceedWithNodes(expected int) error {
	if pc.err != nil {
		return fmt.Errorf("expected solve to succeed but got: %v", pc.err)
	}
	if len(pc.nodes) != expected {
		return fmt.Errorf("expected %d nodes but got %d", expected, len(pc.nodes))
	}
	return nil
}

func (pc *productionChainContext) theFloorsShouldBe(table *godog.Table) error {
	rows := table.Rows[1:] // Skip header
	if len(pc.floors) != len(rows) {
		return fmt.Errorf("expected %d floors but got %d", len(rows), len(pc.floors))
	}

	for i, row := range rows {
		number, err := strconv.Atoi(row.Cells[0].Value)
		if err != nil {
			return fmt.Errorf("invalid floor %q: %w", row.Cells[0].Value, err)
		}
		names := strings.Split(row.Cells[1].Value, ",")
		for j := range names {
			names[j] = strings.TrimSpace(names[j])
		}

		floor := pc.floors[i]
		actual := make([]string, 0, len(floor.Nodes))
		for _, n := range floor.Nodes {
			actual = append(actual, n.Name())
		}
		if floor.Number != number || !slices.Equal(actual, names) {
			return fmt.Errorf("expected floor %d with %v but got floor %d with %v", number, names, floor.Number, actual)
		}
	}
	return nil
}

func (pc *productionChainContext) nodeShouldReceiveFrom(recipe string, amount float64, material, source string) error {
	node := helpers.NodeByName(pc.nodes, recipe)
	if node == nil {
		return fmt.Errorf("no node for %s", recipe)
	}
	for _, link := range node.Inputs {
		if link.Material == material && link.Source == source && math.Abs(link.Amount-amount) < production.Epsilon {
			return nil
		}
	}
	return fmt.Errorf("%s has no input of %g %s from %s: %v", recipe, amount, material, source, node.Inputs)
}

func (pc *productionChainContext) nodeShouldSendTo(recipe string, amount float64, material, sink string) error {
	node := helpers.NodeByName(pc.nodes, recipe)
	if node == nil {
		return fmt.Errorf("no node for %s", recipe)
	}
	for _, link := range node.Outputs {
		if link.Material == material && link.Sink == sink && math.Abs(link.Amount-amount) < production.Epsilon {
			return nil
		}
	}
	return fmt.Errorf("%s has no output of %g %s to %s: %v", recipe, amount, material, sink, node.Outputs)
}

func (pc *productionChainContext) nodeShouldHaveSurplus(recipe string, amount float64, material string) error {
	node := helpers.NodeByName(pc.nodes, recipe)
	if node == nil {
		return fmt.Errorf("no node for %s", recipe)
	}
	if actual := node.SurplusAmount(material); math.Abs(actual-amount) > production.Epsilon {
		return fmt.Errorf("expected %s surplus of %g %s but got %g", recipe, amount, material, actual)
	}
	return nil
}

func (pc *productionChainContext) nodeShouldBeFullyConsumed(recipe string) error {
	node := helpers.NodeByName(pc.nodes, recipe)
	if node == nil {
		return fmt.Errorf("no node for %s", recipe)
	}
	if !node.FullyConsumed {
		return fmt.Errorf("expected %s to be fully consumed but has surplus %v", recipe, node.AvailableProducts)
	}
	return nil
}

func (pc *productionChainContext) recipeShouldBeMissing(recipe, material string) error {
	var chainErr *production.RecipeChainError
	if !errors.As(pc.err, &chainErr) {
		return fmt.Errorf("expected a recipe chain error but got: %v", pc.err)
	}
	if !slices.Contains(chainErr.Missing[recipe], material) {
		return fmt.Errorf("expected %s to be missing %s but missing is %v", recipe, material, chainErr.Missing[recipe])
	}
	return nil
}

func InitializeProductionChainScenario(sc *godog.ScenarioContext) {
	pc := &productionChainContext{}

	// Before each scenario
	sc.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		pc.reset()
		return ctx, nil
	})

	// Setup steps
	sc.Step(`^the iron chain catalog$`, pc.theIronChainCatalog)
	sc.Step(`^the recipe lines:$`, pc.theRecipeLines)
	sc.Step(`^an external input of ([\d.]+) "([^"]*)"$`, pc.anExternalInputOf)

	// Action steps
	sc.Step(`^I parse the line '([^']*)'$`, pc.iParseTheLine)
	sc.Step(`^I solve the chain$`, pc.iSolveTheChain)

	// Assertion steps
	sc.Step(`^the parsed recipe should be "([^"]*)" in "([^"]*)" with count ([\d.]+)$`, pc.theParsedRecipeShouldBe)
	sc.Step(`^the canonical form should be '([^']*)'$`, pc.theCanonicalFormShouldBe)
	sc.Step(`^the operation should fail with a "([^"]*)" error$`, pc.theOperationShouldFailWithError)
	sc.Step(`^the solve should succeed with (\d+) nodes$`, pc.theSolveShouldSucceedWithNodes)
	sc.Step(`^the floors should be:$`, pc.theFloorsShouldBe)
	sc.Step(`^"([^"]*)" should receive ([\d.]+) "([^"]*)" from "([^"]*)"$`, pc.nodeShouldReceiveFrom)
	sc.Step(`^"([^"]*)" should send ([\d.]+) "([^"]*)" to "([^"]*)"$`, pc.nodeShouldSendTo)
	sc.Step(`^"([^"]*)" should have a surplus of ([\d.]+) "([^"]*)"$`, pc.nodeShouldHaveSurplus)
	sc.Step(`^"([^"]*)" should be fully consumed$`, pc.nodeShouldBeFullyConsumed)
	sc.Step(`^"([^"]*)" should be missing "([^"]*)"$`, pc.recipeShouldBeMissing)
}
