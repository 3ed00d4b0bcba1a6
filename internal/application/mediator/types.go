package mediator

import (
	"context"
)

// Request represents a parse, solve or transport request sent through the mediator
type Request interface{}

// Response represents the result of handling a request
type Response interface{}

// Kinded is implemented by requests that name the planner operation they drive
type Kinded interface {
	OperationKind() string
}

// Operation kinds reported by planner requests
const (
	KindParse     = "parse"
	KindSolve     = "solve"
	KindTransport = "transport"
	KindOther     = "other"
)

// OperationKind returns the operation a request drives, or KindOther
func OperationKind(request Request) string {
	if k, ok := request.(Kinded); ok {
		return k.OperationKind()
	}
	return KindOther
}

// RequestHandler handles a specific request type
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// HandlerFunc is a function that handles a request
type HandlerFunc func(ctx context.Context, request Request) (Response, error)

// Middleware wraps handler execution; the planner uses it for request logging and command metrics
type Middleware func(ctx context.Context, request Request, next HandlerFunc) (Response, error)
