package topo

import (
	"context"
	"errors"
)

var (
	// ErrCycleDetected indicates the dependency graph is not a DAG.
	ErrCycleDetected = errors.New("topo: cycle detected")

	// ErrEmptyName indicates an empty library name in the input.
	ErrEmptyName = errors.New("topo: empty library name")
)

// Option configures Sort.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a context checked once per emitted library.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
