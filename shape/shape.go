// Package shape keeps squares and rectangles as siblings.
//
// A square is not a rectangle whose setters keep both sides equal: code that
// stretches a rectangle's height expects its width to stay put, and such a
// square would break that expectation. Only types that honour independent
// sides implement Resizable.
package shape

import "fmt"

// Shape has an area.
type Shape interface {
	Area() int
}

// Resizable is a shape whose width and height change independently.
type Resizable interface {
	Shape
	Width() int
	Height() int
	SetWidth(width int)
	SetHeight(height int)
}

var (
	_ Resizable = (*Rectangle)(nil)
	_ Shape     = (*Square)(nil)
)

type Rectangle struct {
	width  int
	height int
}

func NewRectangle(width, height int) *Rectangle {
	return &Rectangle{width: width, height: height}
}

func (r *Rectangle) Width() int { return r.width }
func (r *Rectangle) Height() int { return r.height }
func (r *Rectangle) SetWidth(width int) { r.width = width }
func (r *Rectangle) SetHeight(height int) { r.height = height }
func (r *Rectangle) Area() int { return r.width * r.height }

func (r *Rectangle) String() string {
	return fmt.Sprintf("Width: %d, height: %d", r.width, r.height)
}

type Square struct {
	side int
}

func NewSquare(side int) *Square {
	return &Square{side: side}
}

func (s *Square) Side() int { return s.side }
func (s *Square) SetSide(side int) { s.side = side }
func (s *Square) Area() int { return s.side * s.side }
func (s *Square) String() string { return fmt.Sprintf("Side: %d", s.side) }

// StretchHeight sets r's height and reports the area expected from the
// unchanged width alongside the area r actually has.
// They are equal for every correct Resizable.
func StretchHeight(r Resizable, height int) (expected int, got int) {
	width := r.Width()
	r.SetHeight(height)
	return width * height, r.Area()
}
