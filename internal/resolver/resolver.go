// Package resolver holds the backend functions the panel can call through the
// bridge. Functions are registered by key with Define and frozen into a
// Definitions table that the bridge dispatches against.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// ErrUnknownFunction is returned when no function is registered under a key.
var ErrUnknownFunction = errors.New("unknown resolver function")

// RequestContext describes who triggered an invocation.
type RequestContext struct {
	AccountID string
	PageID    string
}

// Request is what a resolver function receives. Payload is the decoded JSON
// object sent by the caller; it is nil when the caller sent no payload.
type Request struct {
	Payload map[string]any
	Context RequestContext
}

// Func handles a single named operation.
type Func func(ctx context.Context, req Request) (any, error)

// Resolver collects function definitions.
type Resolver struct {
	funcs  map[string]Func
	logger *zap.Logger
}

// New returns an empty resolver.
func New(logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		funcs:  map[string]Func{},
		logger: logger,
	}
}

// Define registers fn under key. Defining the same key twice panics.
func (r *Resolver) Define(key string, fn Func) *Resolver {
	if key == "" {
		panic("resolver: empty function key")
	}
	if fn == nil {
		panic(fmt.Sprintf("resolver: nil function for %q", key))
	}
	if _, exists := r.funcs[key]; exists {
		panic(fmt.Sprintf("resolver: function %q already defined", key))
	}
	r.funcs[key] = fn
	return r
}

// Definitions freezes the registered functions into a dispatch table.
func (r *Resolver) Definitions() Definitions {
	funcs := make(map[string]Func, len(r.funcs))
	for k, fn := range r.funcs {
		funcs[k] = fn
	}
	return Definitions{funcs: funcs, logger: r.logger}
}

// Definitions is an immutable table of resolver functions.
type Definitions struct {
	funcs  map[string]Func
	logger *zap.Logger
}

// Keys lists the registered function keys in sorted order.
func (d Definitions) Keys() []string {
	keys := make([]string, 0, len(d.funcs))
	for k := range d.funcs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Invoke runs the function registered under key.
func (d Definitions) Invoke(ctx context.Context, key string, req Request) (any, error) {
	fn, ok := d.funcs[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, key)
	}
	d.logger.Debug("invoking resolver function", zap.String("key", key))
	return fn(ctx, req)
}
