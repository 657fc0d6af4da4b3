// Package shapes shows substitutability restored by trading a mutable hierarchy for a small capability.
//
// The problem subpackage has a Square extend a freely resizable Rectangle,
// and protect its own invariant by silently changing both sides on every resize.
// Any caller that sets a width and a height on what it believes is a rectangle gets lied to.
//
// Here the base abstraction is narrowed down to the one question every shape can answer,
// its area, and both Rectangle and Square became immutable value types.
// There is no setter left to disagree about,
// so a Square is substitutable for a Rectangle anywhere a Shape is consumed.
package shapes

// Shape is the capability of reporting an area.
type Shape interface {
	Area() int
}

// Rectangle is an immutable rectangle value.
type Rectangle struct {
	Width  int
	Height int
}

func (r Rectangle) Area() int { return r.Width * r.Height }

// Square is an immutable square value.
// It does not reuse Rectangle, because it has nothing to reuse from it,
// the equality of its sides is expressed by having a single Side field.
type Square struct {
	Side int
}

func (s Square) Area() int { return s.Side * s.Side }

// TotalArea sums the area of every received shape.
// It cannot tell a Rectangle from a Square, and it does not have to.
func TotalArea(shapes ...Shape) int {
	var total int
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}
