package services

import (
	"github.com/andrescamacho/factory-planner-go/internal/adapters/metrics"
	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
	"github.com/andrescamacho/factory-planner-go/internal/domain/transport"
)

// Floor is a group of nodes sharing a batch number
type Floor struct {
	Number int
	Nodes  []*production.ProductionNode
}

// ProductTransport is the conveyance plan for one product of a node
type ProductTransport struct {
	Material          string
	PerInstanceAmount float64
	Plan              transport.PlanResult
	Err               error
}

// FloorPlanner organises solved nodes into floors and sizes their output conveyance
type FloorPlanner struct {
	capacity *transport.CapacityPlanner
}

// NewFloorPlanner creates a new floor planner
func NewFloorPlanner(capacity *transport.CapacityPlanner) *FloorPlanner {
	return &FloorPlanner{capacity: capacity}
}

// Group returns floors in ascending order, each preserving the node order it was given.
// Floor numbers with no nodes are skipped.
//
// Example:
//
//	Recipe_IronIngot_C   (batch 0) ─┐
//	Recipe_CopperIngot_C (batch 0) ─┴─ Floor 0
//	Recipe_IronPlate_C   (batch 1) ─┐
//	Recipe_Wire_C        (batch 1) ─┴─ Floor 1
func (f *FloorPlanner) Group(nodes []*production.ProductionNode) []Floor {
	levelMap := make(map[int][]*production.ProductionNode)
	maxBatch := -1
	for _, node := range nodes {
		levelMap[node.BatchNumber] = append(levelMap[node.BatchNumber], node)
		if node.BatchNumber > maxBatch {
			maxBatch = node.BatchNumber
		}
	}

	floors := make([]Floor, 0, len(levelMap))
	for batch := 0; batch <= maxBatch; batch++ {
		if group, ok := levelMap[batch]; ok {
			floors = append(floors, Floor{Number: batch, Nodes: group})
		}
	}
	return floors
}

// TransportFor plans the output conveyance of every product of node and records each plan.
// A node with no instances yields no plans.
func (f *FloorPlanner) TransportFor(node *production.ProductionNode) []ProductTransport {
	count := node.Recipe.Count
	if count <= 0 {
		return nil
	}

	result := make([]ProductTransport, 0, len(node.Products))
	for _, p := range node.Products {
		perInstance := p.Amount / count
		plan, err := f.capacity.PlanForMaterial(p.Item, perInstance, count)
		if err == nil {
			metrics.RecordTransportPlan(string(plan.Class), plan.Satisfied)
		}
		result = append(result, ProductTransport{
			Material:          p.Item,
			PerInstanceAmount: perInstance,
			Plan:              plan,
			Err:               err,
		})
	}
	return result
}
