package common

// Mediator types re-exported so handlers can keep importing only this package.

import (
	"github.com/andrescamacho/factory-planner-go/internal/application/mediator"
)

type (
	Request        = mediator.Request
	Response       = mediator.Response
	RequestHandler = mediator.RequestHandler
	HandlerFunc    = mediator.HandlerFunc
	Middleware     = mediator.Middleware
	Mediator       = mediator.Mediator
	Kinded         = mediator.Kinded
)

const (
	KindParse     = mediator.KindParse
	KindSolve     = mediator.KindSolve
	KindTransport = mediator.KindTransport
)

var (
	NewMediator   = mediator.NewMediator
	OperationKind = mediator.OperationKind
)
