package specification

import "context"

type base[T any] struct {
	operators[T]
	predicate func(ctx context.Context, t T) bool
}

func (spec *base[T]) IsSatisfiedBy(ctx context.Context, t T) (bool, error) {
	return spec.predicate(ctx, t), nil
}
