// Package areas shows an area calculator that stays closed while the shape set grows.
//
// The problem subpackage has a calculator with one method per shape
// and a type switch for the general case,
// so every new shape reopens the calculator.
// Here the calculator depends on the Shape interface only,
// and a new shape is a new type that the calculator meets for the first time at runtime.
package areas

import "math"

// Shape is the capability of reporting an area.
type Shape interface {
	Area() float64
}

type Rectangle struct {
	Length float64
	Width  float64
}

func (r Rectangle) Area() float64 { return r.Length * r.Width }

type Circle struct {
	Radius float64
}

func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Calculator computes areas for any Shape.
// Adding a shape never changes this type.
type Calculator struct{}

func (Calculator) Area(s Shape) float64 { return s.Area() }

// Sum totals the area of every received shape.
func (Calculator) Sum(shapes ...Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}
