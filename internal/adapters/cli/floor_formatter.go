package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andrescamacho/factory-planner-go/internal/application/production/services"
	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
)

// FloorFormatter renders solved production floors as a tree
type FloorFormatter struct {
	floors        *services.FloorPlanner
	showTransport bool

	title   lipgloss.Style
	floor   lipgloss.Style
	recipe  lipgloss.Style
	muted   lipgloss.Style
	surplus lipgloss.Style
	warning lipgloss.Style
}

// NewFloorFormatter creates a formatter whose styles match the color support of out.
// floors may be nil when showTransport is false.
func NewFloorFormatter(out io.Writer, floors *services.FloorPlanner, useColors, showTransport bool) *FloorFormatter {
	r := lipgloss.NewRenderer(out)
	f := &FloorFormatter{
		floors:        floors,
		showTransport: showTransport && floors != nil,
		title:         r.NewStyle(),
		floor:         r.NewStyle(),
		recipe:        r.NewStyle(),
		muted:         r.NewStyle(),
		surplus:       r.NewStyle(),
		warning:       r.NewStyle(),
	}
	if useColors {
		f.title = r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
		f.floor = r.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4"))
		f.recipe = r.NewStyle().Bold(true)
		f.muted = r.NewStyle().Foreground(lipgloss.Color("#6C7A89"))
		f.surplus = r.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
		f.warning = r.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	}
	return f
}

// FormatFloors renders every floor with its nodes and their links
func (f *FloorFormatter) FormatFloors(floors []services.Floor) string {
	if len(floors) == 0 {
		return "(no recipes)\n"
	}

	var builder strings.Builder
	for _, fl := range floors {
		builder.WriteString(f.floor.Render(fmt.Sprintf("Floor %d", fl.Number)))
		builder.WriteString("\n")
		for i, node := range fl.Nodes {
			f.formatNode(&builder, node, i == len(fl.Nodes)-1)
		}
	}
	return builder.String()
}

// formatNode writes one node and its links as children
func (f *FloorFormatter) formatNode(builder *strings.Builder, node *production.ProductionNode, isLast bool) {
	linePrefix, childPrefix := "├── ", "│   "
	if isLast {
		linePrefix, childPrefix = "└── ", "    "
	}

	header := fmt.Sprintf("%s %s",
		f.recipe.Render(node.Name()),
		f.muted.Render(fmt.Sprintf("@ %s x%s", node.Recipe.Building, formatAmount(node.Recipe.Count))),
	)
	builder.WriteString(linePrefix + header + "\n")

	lines := make([]string, 0, len(node.Inputs)+len(node.Outputs)+len(node.AvailableProducts))
	for _, link := range node.Inputs {
		lines = append(lines, fmt.Sprintf("in      %s %s ← %s", link.Material, formatAmount(link.Amount), link.Source))
	}
	for _, link := range node.Outputs {
		lines = append(lines, fmt.Sprintf("out     %s %s → %s", link.Material, formatAmount(link.Amount), link.Sink))
	}
	for _, rate := range node.AvailableProducts {
		lines = append(lines, f.surplus.Render(fmt.Sprintf("surplus %s %s", rate.Item, formatAmount(rate.Amount))))
	}
	if f.showTransport {
		lines = append(lines, f.transportLines(node)...)
	}

	for i, line := range lines {
		prefix := "├── "
		if i == len(lines)-1 {
			prefix = "└── "
		}
		builder.WriteString(childPrefix + prefix + line + "\n")
	}
}

// transportLines describes the conveyance plan for each product of node
func (f *FloorFormatter) transportLines(node *production.ProductionNode) []string {
	plans := f.floors.TransportFor(node)
	lines := make([]string, 0, len(plans))
	for _, p := range plans {
		if p.Err != nil {
			lines = append(lines, f.warning.Render(fmt.Sprintf("%-7s %s: %v", "carry", p.Material, p.Err)))
			continue
		}
		label := "belt"
		if p.Plan.Class == production.ClassFluid {
			label = "pipe"
		}
		lines = append(lines, fmt.Sprintf("%-7s %s %s/instance: %s",
			label, p.Material, formatAmount(p.PerInstanceAmount), f.formatTiers(p.Plan.Labels, p.Plan.Tiers, p.Plan.Satisfied)))
	}
	return lines
}

// formatTiers lists the non-empty tiers, or flags an unsatisfiable plan
func (f *FloorFormatter) formatTiers(labels []string, tiers []int, satisfied bool) string {
	if !satisfied {
		return f.warning.Render("no viable configuration")
	}
	parts := make([]string, 0, len(tiers))
	for i, n := range tiers {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s×%d", labels[i], n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

// FormatSummary creates a compact one-line summary of a solve
func (f *FloorFormatter) FormatSummary(source string, nodes []*production.ProductionNode, floors []services.Floor) string {
	external, surplus := 0, 0
	for _, node := range nodes {
		for _, link := range node.Inputs {
			if link.IsExternal() {
				external++
			}
		}
		surplus += len(node.AvailableProducts)
	}
	return f.title.Render(fmt.Sprintf(
		"%s: %d recipes, %d floors, %d external feeds, %d surplus products",
		source, len(nodes), len(floors), external, surplus,
	))
}

// formatAmount prints a per-minute amount without float noise
func formatAmount(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}
