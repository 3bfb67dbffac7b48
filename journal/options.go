package journal

import (
	"os"

	"go.uber.org/zap"
)

type option struct {
	Logger *zap.Logger
	Perm   os.FileMode
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Perm == 0 {
		o.Perm = 0o644
	}
	return o
}

type Option func(*option)

func Logger(logger *zap.Logger) Option {
	return func(o *option) {
		o.Logger = logger
	}
}

// Perm sets the permission bits of saved files.
func Perm(perm os.FileMode) Option {
	return func(o *option) {
		o.Perm = perm
	}
}
