package specification

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// conjunction is satisfied when every child is satisfied.
type conjunction[T any] struct {
	operators[T]
	specs []Specification[T]
}

func newConjunction[T any](specs []Specification[T]) (*conjunction[T], error) {
	flat, err := flatten(specs, func(spec Specification[T]) ([]Specification[T], bool) {
		c, ok := spec.(*conjunction[T])
		if !ok {
			return nil, false
		}
		return c.specs, true
	})
	if err != nil {
		return nil, err
	}
	spec := &conjunction[T]{specs: flat}
	spec.operators = operators[T]{self: spec}
	return spec, nil
}

// IsSatisfiedBy stops at the first child that is not satisfied or fails.
func (spec *conjunction[T]) IsSatisfiedBy(ctx context.Context, t T) (bool, error) {
	for _, child := range spec.specs {
		ok, err := child.IsSatisfiedBy(ctx, t)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (spec *conjunction[T]) Children() []Specification[T] {
	return slices.Clone(spec.specs)
}

// flatten validates specs and splices the children of nested composites of the same kind.
func flatten[T any](specs []Specification[T], unwrap func(Specification[T]) ([]Specification[T], bool)) ([]Specification[T], error) {
	if len(specs) == 0 {
		return nil, errors.Wrap(ErrInvalidComposition, "no child specifications")
	}
	flat := make([]Specification[T], 0, len(specs))
	for i, spec := range specs {
		if spec == nil {
			return nil, errors.Wrapf(ErrInvalidComposition, "child %d is nil", i)
		}
		if children, ok := unwrap(spec); ok {
			flat = append(flat, children...)
			continue
		}
		flat = append(flat, spec)
	}
	return flat, nil
}
