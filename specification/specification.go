package specification

import "context"

// Specification interface.
// Use New as base for creating specifications, and
// only the predicate must be implemented.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(ctx context.Context, t T) (bool, error)

	// And create a new specification that is the AND operation of the current specification and
	// another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current specification and
	// another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the current specification.
	Not() Specification[T]
}

// Composite is a Specification built from an ordered list of child specifications.
type Composite[T any] interface {
	Specification[T]

	// Children returns a copy of the child specifications, in evaluation order.
	Children() []Specification[T]
}

// New returns a Specification backed by predicate.
func New[T any](predicate func(ctx context.Context, t T) bool) Specification[T] {
	if predicate == nil {
		panic(ErrPredicateNil)
	}
	spec := &base[T]{predicate: predicate}
	spec.operators = operators[T]{self: spec}
	return spec
}

// And returns the conjunction of left and right.
// Conjunctions on either side are flattened into the result.
// It panics if left or right is nil.
func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	spec, err := newConjunction([]Specification[T]{left, right})
	if err != nil {
		panic(err)
	}
	return spec
}

// Or returns the disjunction of left and right.
// Disjunctions on either side are flattened into the result.
// It panics if left or right is nil.
func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	spec, err := newDisjunction([]Specification[T]{left, right})
	if err != nil {
		panic(err)
	}
	return spec
}

// Not returns the inverse of spec. It panics if spec is nil.
func Not[T any](spec Specification[T]) Specification[T] {
	if spec == nil {
		panic(ErrInvalidComposition)
	}
	n := &not[T]{spec: spec}
	n.operators = operators[T]{self: n}
	return n
}

// Conjunction returns a specification satisfied iff all specs are satisfied.
// It returns ErrInvalidComposition when specs is empty or holds a nil.
func Conjunction[T any](specs ...Specification[T]) (Specification[T], error) {
	spec, err := newConjunction(specs)
	if err != nil {
		return nil, err
	}
	return spec, nil
}

// Disjunction returns a specification satisfied iff any of specs is satisfied.
// It returns ErrInvalidComposition when specs is empty or holds a nil.
func Disjunction[T any](specs ...Specification[T]) (Specification[T], error) {
	spec, err := newDisjunction(specs)
	if err != nil {
		return nil, err
	}
	return spec, nil
}

// operators implements the combinators on behalf of the specification embedding it.
type operators[T any] struct {
	self Specification[T]
}

func (o operators[T]) And(another Specification[T]) Specification[T] {
	return And[T](o.self, another)
}

func (o operators[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](o.self, another)
}

func (o operators[T]) Not() Specification[T] {
	return Not[T](o.self)
}
