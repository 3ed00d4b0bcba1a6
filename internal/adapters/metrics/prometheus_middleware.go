package metrics

import (
	"context"
	"time"

	"github.com/andrescamacho/factory-planner-go/internal/application/common"
	"github.com/andrescamacho/factory-planner-go/internal/application/mediator"
)

// PrometheusMiddleware creates a middleware that records command execution metrics
//
// This middleware wraps all command/query execution and records:
// - Execution duration (histogram)
// - Success/failure counts (counter)
//
// Each sample is labelled with the request type and the planner operation it drives.
//
// Command names are simplified to remove package prefixes.
// For example: "*commands.SolveChainCommand" becomes "SolveChainCommand"
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)

		collector.RecordCommandExecution(
			common.RequestName(request),
			common.OperationKind(request),
			time.Since(start).Seconds(),
			err == nil,
		)

		return response, err
	}
}
