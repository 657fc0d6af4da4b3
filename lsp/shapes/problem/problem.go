// Package problem holds the shape hierarchy this example refactors away from.
//
// Square reuses Rectangle through embedding to inherit Area for free,
// and keeps its sides equal by overriding both setters to change both dimensions.
// The price is paid by every caller of the Resizable surface:
// setting the width of a supposed rectangle changes its height too.
// A Square is therefore not substitutable where a resizable Rectangle is expected,
// which is the textbook violation of the Liskov Substitution Principle.
package problem

// Resizable is the surface the rest of this example programs against.
// Its implied contract: SetWidth only changes the width, SetHeight only the height.
type Resizable interface {
	SetWidth(width int)
	SetHeight(height int)
	Area() int
}

// Rectangle is a freely resizable rectangle.
type Rectangle struct {
	width  int
	height int
}

func (r *Rectangle) SetWidth(width int)   { r.width = width }
func (r *Rectangle) SetHeight(height int) { r.height = height }
func (r *Rectangle) Area() int            { return r.width * r.height }

// Square extends Rectangle so it can reuse Area.
// To protect the all-sides-equal invariant it resizes both dimensions in both setters,
// and by that it breaks the implied contract of the Resizable surface it inherited.
type Square struct {
	Rectangle
}

func (s *Square) SetWidth(width int) {
	s.Rectangle.SetWidth(width)
	s.Rectangle.SetHeight(width)
}

func (s *Square) SetHeight(height int) {
	s.Rectangle.SetWidth(height)
	s.Rectangle.SetHeight(height)
}
