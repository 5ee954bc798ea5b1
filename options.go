package tablesync

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/tablesync/pkg/sync"
)

// Option is a function that configures a Client
type Option func(*options) error

// options holds the client-wide configuration.
type options struct {
	logger          *zerolog.Logger
	sessionDefaults []sync.Option
}

func defaults() *options {
	return &options{}
}

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithLogger configures the logger sessions log to. Without it the logger in
// the call's context, or the package default, is used.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithSessionDefaults configures options applied to every session before the
// per-call options.
func WithSessionDefaults(opts ...sync.Option) Option {
	return func(o *options) error {
		o.sessionDefaults = append(o.sessionDefaults, opts...)
		return nil
	}
}

// withTimeout bounds ctx by timeout when it is positive.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, func() {} // No-op cancel if no timeout
}
