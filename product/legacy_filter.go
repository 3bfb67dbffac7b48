package product

import "iter"

// LegacyFilter filters products with one method per criterion.
// Every new criterion, or combination of criteria, needs a new method:
// color, size and weight would already need seven of them.
// Prefer filter.Filter with a specification.Specification, which is extended
// by writing new specifications and never modified.
type LegacyFilter struct{}

func (LegacyFilter) ByColor(products []Product, color Color) iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, p := range products {
			if p.Color == color && !yield(p) {
				return
			}
		}
	}
}

func (LegacyFilter) BySize(products []Product, size Size) iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, p := range products {
			if p.Size == size && !yield(p) {
				return
			}
		}
	}
}

func (LegacyFilter) BySizeAndColor(products []Product, size Size, color Color) iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, p := range products {
			if p.Color == color && p.Size == size && !yield(p) {
				return
			}
		}
	}
}
