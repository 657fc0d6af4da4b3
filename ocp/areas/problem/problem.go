// Package problem holds the calculator this example refactors away from.
//
// Calculator enumerates every shape it can handle.
// The enumeration looks harmless with two shapes,
// but each new shape means editing and re-testing this type,
// and until that edit ships, the new shape is simply not supported.
package problem

import (
	"math"

	"github.com/goprinciples/solid"
)

type Rectangle struct {
	Length float64
	Width  float64
}

type Circle struct {
	Radius float64
}

// Calculator knows every shape there is. Or so it believes.
type Calculator struct{}

func (Calculator) RectangleArea(r Rectangle) float64 {
	return r.Length * r.Width
}

func (Calculator) CircleArea(c Circle) float64 {
	return math.Pi * c.Radius * c.Radius
}

// Area dispatches on the concrete type.
// The default branch is where every future shape starts its life.
func (calc Calculator) Area(shape interface{}) (float64, error) {
	switch s := shape.(type) {
	case Rectangle:
		return calc.RectangleArea(s), nil
	case Circle:
		return calc.CircleArea(s), nil
	default:
		return 0, solid.ErrNotSupported
	}
}
