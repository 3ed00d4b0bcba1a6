package common

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/factory-planner-go/internal/application/mediator"
)

// LoggingMiddleware logs every request handled by the mediator with its duration and outcome
func LoggingMiddleware() mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		logger := LoggerFromContext(ctx)
		name := RequestName(request)

		start := time.Now()
		response, err := next(ctx, request)
		elapsed := time.Since(start)

		if err != nil {
			logger.Debug("request failed", "request", name, "duration", elapsed, "error", err)
			return response, err
		}
		logger.Debug("request handled", "request", name, "duration", elapsed)
		return response, nil
	}
}

// RequestName returns the bare type name of a request
// Examples:
//   - "*commands.SolveChainCommand" → "SolveChainCommand"
//   - "*queries.ParseRecipeQuery" → "ParseRecipeQuery"
func RequestName(request mediator.Request) string {
	if request == nil {
		return "UnknownRequest"
	}
	fullName := reflect.TypeOf(request).String()
	if idx := strings.LastIndex(fullName, "."); idx >= 0 {
		return fullName[idx+1:]
	}
	return strings.TrimPrefix(fullName, "*")
}
