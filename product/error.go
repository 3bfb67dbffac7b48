package product

import "github.com/pkg/errors"

var (
	// ErrUnknownColor color name or value is not in the catalog
	ErrUnknownColor = errors.New("product: unknown color")

	// ErrUnknownSize size name or value is not in the catalog
	ErrUnknownSize = errors.New("product: unknown size")

	// ErrUnknownFormat catalog format is neither json nor yaml
	ErrUnknownFormat = errors.New("product: unknown catalog format")
)
