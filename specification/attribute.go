package specification

import "context"

// Attributed is implemented by items that expose named attributes.
type Attributed interface {
	// Attribute returns the value of the named attribute, or false if the item does not define it.
	Attribute(name string) (any, bool)
}

// AttributeSpecification is satisfied when an item's attribute equals the expected value.
type AttributeSpecification[T Attributed, V comparable] struct {
	operators[T]
	name string
	want V
}

// Attribute returns a specification satisfied iff t.Attribute(name) == want.
// An item that does not define name fails with an *AttributeNotFoundError.
func Attribute[T Attributed, V comparable](name string, want V) *AttributeSpecification[T, V] {
	spec := &AttributeSpecification[T, V]{name: name, want: want}
	spec.operators = operators[T]{self: spec}
	return spec
}

func (spec *AttributeSpecification[T, V]) IsSatisfiedBy(_ context.Context, t T) (bool, error) {
	value, ok := t.Attribute(spec.name)
	if !ok {
		return false, &AttributeNotFoundError{Name: spec.name}
	}
	got, ok := value.(V)
	return ok && got == spec.want, nil
}

// Name returns the queried attribute name.
func (spec *AttributeSpecification[T, V]) Name() string {
	return spec.name
}

// Want returns the expected attribute value.
func (spec *AttributeSpecification[T, V]) Want() V {
	return spec.want
}
