package checkout

import "context"

// Authorizer confirms a settlement once the processing latency has elapsed.
// Returning an error moves the session to StateFailed.
type Authorizer interface {
	Authorize(ctx context.Context, s Settlement) error
}

// AuthorizerFunc adapts a function to Authorizer.
type AuthorizerFunc func(ctx context.Context, s Settlement) error

// Authorize calls f.
func (f AuthorizerFunc) Authorize(ctx context.Context, s Settlement) error {
	return f(ctx, s)
}

// ApproveAll accepts every settlement. Card payments have no external
// authorization, so this is the default.
var ApproveAll Authorizer = AuthorizerFunc(func(context.Context, Settlement) error {
	return nil
})
