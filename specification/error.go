package specification

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidComposition composite specification has no children, or a nil one
	ErrInvalidComposition = errors.New("specification: invalid composition")

	// ErrAttributeNotFound item does not define the queried attribute
	ErrAttributeNotFound = errors.New("specification: attribute not found")

	// ErrPredicateNil predicate func is nil
	ErrPredicateNil = errors.New("specification: predicate is nil")
)

// AttributeNotFoundError reports the attribute an item failed to define.
type AttributeNotFoundError struct {
	Name string
}

func (e *AttributeNotFoundError) Error() string {
	return ErrAttributeNotFound.Error() + ", " + strconv.Quote(e.Name)
}

func (e *AttributeNotFoundError) Is(target error) bool {
	return target == ErrAttributeNotFound
}
