package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/factory-planner-go/internal/adapters/metrics"
	"github.com/andrescamacho/factory-planner-go/internal/application/common"
	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
	"github.com/andrescamacho/factory-planner-go/internal/domain/transport"
)

// PlanTransportQuery sizes the conveyance for one material produced by several instances
type PlanTransportQuery struct {
	Material          string
	PerInstanceAmount float64
	InstanceCount     float64
}

func (q *PlanTransportQuery) OperationKind() string { return common.KindTransport }

// PlanTransportResponse contains per-tier instance assignments
type PlanTransportResponse struct {
	Class     production.MaterialClass
	Tiers     []int
	Labels    []string
	Satisfied bool
}

// PlanTransportHandler handles the PlanTransport query
type PlanTransportHandler struct {
	planner *transport.CapacityPlanner
}

// NewPlanTransportHandler creates a new PlanTransportHandler
func NewPlanTransportHandler(planner *transport.CapacityPlanner) *PlanTransportHandler {
	return &PlanTransportHandler{planner: planner}
}

// Handle executes the PlanTransport query
func (h *PlanTransportHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*PlanTransportQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *PlanTransportQuery")
	}

	plan, err := h.planner.PlanForMaterial(query.Material, query.PerInstanceAmount, query.InstanceCount)
	if err != nil {
		return nil, err
	}
	metrics.RecordTransportPlan(string(plan.Class), plan.Satisfied)

	if !plan.Satisfied {
		common.LoggerFromContext(ctx).Warn("no viable conveyance configuration",
			"material", query.Material,
			"per_instance", query.PerInstanceAmount,
			"instances", query.InstanceCount,
		)
	}

	return &PlanTransportResponse{
		Class:     plan.Class,
		Tiers:     plan.Tiers,
		Labels:    plan.Labels,
		Satisfied: plan.Satisfied,
	}, nil
}
