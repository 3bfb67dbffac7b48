package filter

import (
	"github.com/go-leo/gox/syncx/gopher"
	"go.uber.org/zap"
)

type option struct {
	Pool   gopher.Gopher
	Logger *zap.Logger
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

type Option func(*option)

// Pool evaluates items concurrently on pool. Matches are still yielded in input order.
func Pool(pool gopher.Gopher) Option {
	return func(o *option) {
		o.Pool = pool
	}
}

func Logger(logger *zap.Logger) Option {
	return func(o *option) {
		o.Logger = logger
	}
}
