package strategy

import (
	"context"

	"github.com/kbukum/apikit/transport"
)

// Dispatch performs one fully classified underlying call: it sends the
// request, classifies the response, and returns the handled payload.
type Dispatch func(ctx context.Context, req transport.Request) (any, error)

// Strategy maps a single logical call to one or more underlying calls.
type Strategy interface {
	Execute(ctx context.Context, req transport.Request, dispatch Dispatch) (any, error)
}

// Single is the default strategy: exactly one underlying call, payload
// passed through.
type Single struct{}

// Execute dispatches the request once.
func (Single) Execute(ctx context.Context, req transport.Request, dispatch Dispatch) (any, error) {
	return dispatch(ctx, req)
}
