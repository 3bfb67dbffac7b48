package filter

import "errors"

var (
	// ErrSpecificationNil Specification arg is nil
	ErrSpecificationNil = errors.New("filter: specification is nil")
)
