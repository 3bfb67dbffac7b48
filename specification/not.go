package specification

import "context"

// not used to create a new specification that is the inverse (NOT) of the given spec.
type not[T any] struct {
	operators[T]
	spec Specification[T]
}

func (spec *not[T]) IsSatisfiedBy(ctx context.Context, t T) (bool, error) {
	ok, err := spec.spec.IsSatisfiedBy(ctx, t)
	if err != nil {
		return false, err
	}
	return !ok, nil
}
