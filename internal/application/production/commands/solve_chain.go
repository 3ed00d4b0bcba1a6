package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/factory-planner-go/internal/adapters/metrics"
	"github.com/andrescamacho/factory-planner-go/internal/application/common"
	"github.com/andrescamacho/factory-planner-go/internal/application/production/services"
	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
	"github.com/andrescamacho/factory-planner-go/pkg/utils"
)

// SolveChainCommand resolves a list of recipe lines into production nodes
type SolveChainCommand struct {
	// Source names where the lines came from, used only in the solve ID
	Source         string
	Lines          []string
	ExternalInputs []production.ExternalInput
}

func (c *SolveChainCommand) OperationKind() string { return common.KindSolve }

// SolveChainResponse contains the resolved nodes and their floors
type SolveChainResponse struct {
	SolveID string
	Nodes   []*production.ProductionNode
	Floors  []services.Floor
}

// SolveChainHandler handles the SolveChain command
type SolveChainHandler struct {
	solver *services.ChainSolver
	floors *services.FloorPlanner
}

// NewSolveChainHandler creates a new SolveChainHandler
func NewSolveChainHandler(solver *services.ChainSolver, floors *services.FloorPlanner) *SolveChainHandler {
	return &SolveChainHandler{
		solver: solver,
		floors: floors,
	}
}

// Handle executes the SolveChain command
func (h *SolveChainHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SolveChainCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SolveChainCommand")
	}

	solveID := utils.GenerateSolveID(cmd.Source)
	logger := common.LoggerFromContext(ctx).With("solve_id", solveID)
	logger.Info("solving recipe chain", "lines", len(cmd.Lines), "external_inputs", len(cmd.ExternalInputs))

	start := time.Now()
	nodes, err := h.solver.WithLogger(logger).Solve(cmd.Lines, cmd.ExternalInputs)
	elapsed := time.Since(start)

	if err != nil {
		kind := production.KindOf(err)
		metrics.RecordSolve("error", string(kind), 0, 0, elapsed.Seconds())
		logger.Warn("recipe chain solve failed", "kind", kind, "error", err)
		return nil, fmt.Errorf("failed to solve recipe chain: %w", err)
	}

	floors := h.floors.Group(nodes)
	metrics.RecordSolve("success", "", len(nodes), len(floors), elapsed.Seconds())
	logger.Info("recipe chain solved", "nodes", len(nodes), "floors", len(floors), "duration", elapsed)

	return &SolveChainResponse{
		SolveID: solveID,
		Nodes:   nodes,
		Floors:  floors,
	}, nil
}
