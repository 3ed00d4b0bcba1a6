package steps

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
	"github.com/andrescamacho/factory-planner-go/internal/domain/transport"
)

type transportPlannerContext struct {
	planner *transport.CapacityPlanner
	result  transport.PlanResult
	err     error
}

func (tc *transportPlannerContext) reset() {
	tc.planner = nil
	tc.result = transport.PlanResult{}
	tc.err = nil
}

func parseAmounts(list string) ([]float64, error) {
	parts := strings.Split(list, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", p, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// Setup steps

func (tc *transportPlannerContext) theDefaultConveyanceTiers() error {
	tc.planner = transport.NewCapacityPlanner(transport.DefaultTierTable(), production.DefaultMaterialTable(nil, nil))
	return nil
}

func (tc *transportPlannerContext) beltAndPipeTiers(belts, pipes string) error {
	beltCapacities, err := parseAmounts(belts)
	if err != nil {
		return err
	}
	pipeCapacities, err := parseAmounts(pipes)
	if err != nil {
		return err
	}
	tiers, err := transport.NewTierTable(beltCapacities, pipeCapacities)
	if err != nil {
		return err
	}
	tc.planner = transport.NewCapacityPlanner(tiers, production.DefaultMaterialTable(nil, nil))
	return nil
}

// Action steps

func (tc *transportPlannerContext) iPlanInstancesOf(count, amount float64, material string) error {
	tc.result, tc.err = tc.planner.PlanForMaterial(material, amount, count)
	return nil
}

// Assertion steps

func (tc *transportPlannerContext) theTiersShouldBe(expected string) error {
	if tc.err != nil {
		return fmt.Errorf("expected a plan but got: %v", tc.err)
	}
	parts := strings.Split(expected, ",")
	tiers := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("invalid tier count %q: %w", p, err)
		}
		tiers = append(tiers, n)
	}
	if !slices.Equal(tc.result.Tiers, tiers) {
		return fmt.Errorf("expected tiers %v but got %v", tiers, tc.result.Tiers)
	}
	return nil
}

func (tc *transportPlannerContext) thePlanShouldBeSatisfied() error {
	if !tc.result.Satisfied {
		return fmt.Errorf("expected a satisfied plan but got %v", tc.result.Tiers)
	}
	return nil
}

func (tc *transportPlannerContext) thePlanShouldNotBeSatisfied() error {
	if tc.result.Satisfied {
		return fmt.Errorf("expected an unsatisfied plan but got %v", tc.result.Tiers)
	}
	return nil
}

func (tc *transportPlannerContext) theMaterialClassShouldBe(class string) error {
	if string(tc.result.Class) != class {
		return fmt.Errorf("expected class %s but got %s", class, tc.result.Class)
	}
	return nil
}

func (tc *transportPlannerContext) theTierLabelsShouldBe(expected string) error {
	labels := strings.Split(expected, ",")
	for i := range labels {
		labels[i] = strings.TrimSpace(labels[i])
	}
	if !slices.Equal(tc.result.Labels, labels) {
		return fmt.Errorf("expected labels %v but got %v", labels, tc.result.Labels)
	}
	return nil
}

func (tc *transportPlannerContext) thePlanShouldBeRejectedAs(kind string) error {
	if tc.err == nil {
		return fmt.Errorf("expected a %s error but got tiers %v", kind, tc.result.Tiers)
	}
	if actual := production.KindOf(tc.err); string(actual) != kind {
		return fmt.Errorf("expected a %s error but got %s: %v", kind, actual, tc.err)
	}
	return nil
}

func InitializeTransportPlannerScenario(sc *godog.ScenarioContext) {
	tc := &transportPlannerContext{}

	// Before each scenario
	sc.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Setup steps
	sc.Step(`^the default conveyance tiers$`, tc.theDefaultConveyanceTiers)
	sc.Step(`^belt tiers "([^"]*)" and pipe tiers "([^"]*)"$`, tc.beltAndPipeTiers)

	// Action steps
	sc.Step(`^I plan ([\d.-]+) instances producing ([\d.-]+) per minute of "([^"]*)"$`, tc.iPlanInstancesOf)

	// Assertion steps
	sc.Step(`^the tiers should be "([^"]*)"$`, tc.theTiersShouldBe)
	sc.Step(`^the plan should be satisfied$`, tc.thePlanShouldBeSatisfied)
	sc.Step(`^the plan should not be satisfied$`, tc.thePlanShouldNotBeSatisfied)
	sc.Step(`^the material class should be "([^"]*)"$`, tc.theMaterialClassShouldBe)
	sc.Step(`^the tier labels should be "([^"]*)"$`, tc.theTierLabelsShouldBe)
	sc.Step(`^the plan should be rejected as "([^"]*)"$`, tc.thePlanShouldBeRejectedAs)
}
