package product

import "github.com/go-leo/solid/specification"

// Attribute names understood by Product.Attribute.
const (
	AttrName  = "name"
	AttrColor = "color"
	AttrSize  = "size"
)

const postfix = "product"

// Product is the item of the catalog.
type Product struct {
	Name  string `json:"name" yaml:"name"`
	Color Color  `json:"color" yaml:"color"`
	Size  Size   `json:"size" yaml:"size"`
}

var _ specification.Attributed = Product{}

func (p Product) String() string {
	return p.Name
}

// Describe returns the name followed by the kind, e.g. "Apple product".
func (p Product) Describe() string {
	return p.Name + " " + postfix
}

func (p Product) Attribute(name string) (any, bool) {
	switch name {
	case AttrName:
		return p.Name, true
	case AttrColor:
		return p.Color, true
	case AttrSize:
		return p.Size, true
	default:
		return nil, false
	}
}

// ColorIs is satisfied by products of color c.
func ColorIs(c Color) specification.Specification[Product] {
	return specification.Attribute[Product](AttrColor, c)
}

// SizeIs is satisfied by products of size s.
func SizeIs(s Size) specification.Specification[Product] {
	return specification.Attribute[Product](AttrSize, s)
}

// NameIs is satisfied by the products named n.
func NameIs(n string) specification.Specification[Product] {
	return specification.Attribute[Product](AttrName, n)
}
