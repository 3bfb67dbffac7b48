package specification

import (
	"context"

	"golang.org/x/exp/slices"
)

// disjunction is satisfied when any child is satisfied.
type disjunction[T any] struct {
	operators[T]
	specs []Specification[T]
}

func newDisjunction[T any](specs []Specification[T]) (*disjunction[T], error) {
	flat, err := flatten(specs, func(spec Specification[T]) ([]Specification[T], bool) {
		d, ok := spec.(*disjunction[T])
		if !ok {
			return nil, false
		}
		return d.specs, true
	})
	if err != nil {
		return nil, err
	}
	spec := &disjunction[T]{specs: flat}
	spec.operators = operators[T]{self: spec}
	return spec, nil
}

func (spec *disjunction[T]) IsSatisfiedBy(ctx context.Context, t T) (bool, error) {
	for _, child := range spec.specs {
		ok, err := child.IsSatisfiedBy(ctx, t)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (spec *disjunction[T]) Children() []Specification[T] {
	return slices.Clone(spec.specs)
}
