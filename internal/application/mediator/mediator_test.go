package mediator_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factory-planner-go/internal/application/mediator"
)

type pingQuery struct {
	Value string
}

type otherQuery struct{}

type echoHandler struct{}

func (h *echoHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	return request.(*pingQuery).Value, nil
}

type failingHandler struct{}

func (h *failingHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	return nil, errors.New("boom")
}

func TestMediator_SendDispatchesByType(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, &echoHandler{}))

	resp, err := m.Send(context.Background(), &pingQuery{Value: "pong"})

	require.NoError(t, err)
	assert.Equal(t, "pong", resp)
}

func TestMediator_UnregisteredType(t *testing.T) {
	m := mediator.NewMediator()

	_, err := m.Send(context.Background(), &otherQuery{})

	assert.ErrorContains(t, err, "no handler registered")
}

func TestMediator_RejectsNil(t *testing.T) {
	m := mediator.NewMediator()

	_, err := m.Send(context.Background(), nil)
	assert.Error(t, err)
	assert.Error(t, mediator.RegisterHandler[*pingQuery](m, nil))
}

func TestMediator_DuplicateRegistration(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, &echoHandler{}))

	err := mediator.RegisterHandler[*pingQuery](m, &echoHandler{})

	assert.ErrorContains(t, err, "already registered")
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, &echoHandler{}))

	var calls []string
	record := func(name string) mediator.Middleware {
		return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			calls = append(calls, name+" before")
			resp, err := next(ctx, request)
			calls = append(calls, name+" after")
			return resp, err
		}
	}
	m.Use(record("outer"))
	m.Use(record("inner"))

	_, err := m.Send(context.Background(), &pingQuery{})

	require.NoError(t, err)
	assert.Equal(t, []string{"outer before", "inner before", "inner after", "outer after"}, calls)
}

func TestMediator_MiddlewareSeesErrors(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, &failingHandler{}))

	var seen error
	m.Use(func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		resp, err := next(ctx, request)
		seen = err
		return resp, err
	})

	_, err := m.Send(context.Background(), &pingQuery{})

	assert.EqualError(t, err, "boom")
	assert.Equal(t, err, seen)
}

func TestMediator_ConcurrentSend(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, &echoHandler{}))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := m.Send(context.Background(), &pingQuery{Value: "x"})
			assert.NoError(t, err)
			assert.Equal(t, "x", resp)
		}()
	}
	wg.Wait()
}

type transportQuery struct{}

func (q *transportQuery) OperationKind() string { return mediator.KindTransport }

func TestOperationKind(t *testing.T) {
	assert.Equal(t, mediator.KindTransport, mediator.OperationKind(&transportQuery{}))
	assert.Equal(t, mediator.KindOther, mediator.OperationKind(&pingQuery{}))
	assert.Equal(t, mediator.KindOther, mediator.OperationKind(nil))
}
