package specification

import (
	"context"

	"go.uber.org/zap"
)

// Decorator allows us to write something like decorators to Specification.
// It can execute something before IsSatisfiedBy or after.
type Decorator[T any] interface {
	// Decorate wraps the underlying spec, adding some functionality.
	Decorate(spec Specification[T]) Specification[T]
}

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as Decorator.
type DecoratorFunc[T any] func(spec Specification[T]) Specification[T]

// Decorate call f(spec).
func (f DecoratorFunc[T]) Decorate(spec Specification[T]) Specification[T] {
	return f(spec)
}

// Chain decorates the given spec with all decorators, the first one being the outermost.
func Chain[T any](spec Specification[T], decorators ...Decorator[T]) Specification[T] {
	for i := len(decorators) - 1; i >= 0; i-- {
		spec = decorators[i].Decorate(spec)
	}
	return spec
}

// Logged returns a Decorator that logs every evaluation at debug level.
func Logged[T any](logger *zap.Logger, name string) Decorator[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return DecoratorFunc[T](func(spec Specification[T]) Specification[T] {
		l := &logged[T]{spec: spec, logger: logger, name: name}
		l.operators = operators[T]{self: l}
		return l
	})
}

type logged[T any] struct {
	operators[T]
	spec   Specification[T]
	logger *zap.Logger
	name   string
}

func (spec *logged[T]) IsSatisfiedBy(ctx context.Context, t T) (bool, error) {
	ok, err := spec.spec.IsSatisfiedBy(ctx, t)
	spec.logger.Debug("specification evaluated",
		zap.String("specification", spec.name),
		zap.Any("item", t),
		zap.Bool("satisfied", ok),
		zap.Error(err),
	)
	return ok, err
}
