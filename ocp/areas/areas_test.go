package areas_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goprinciples/solid/ocp/areas"
)

func ExampleCalculator_Sum() {
	var calc areas.Calculator

	fmt.Println(calc.Sum(
		areas.Rectangle{Length: 3, Width: 4},
		areas.Rectangle{Length: 2, Width: 2},
	))
	// Output: 16
}

func TestCalculator_Area(t *testing.T) {
	t.Parallel()

	var calc areas.Calculator

	t.Run(`rectangle`, func(t *testing.T) {
		require.Equal(t, float64(12), calc.Area(areas.Rectangle{Length: 3, Width: 4}))
	})

	t.Run(`circle`, func(t *testing.T) {
		require.InDelta(t, math.Pi*4, calc.Area(areas.Circle{Radius: 2}), 0.0001)
	})
}

// triangle is a shape the calculator has never heard of.
// It lives in the test to prove the calculator is open for extension:
// no production code changed to support it.
type triangle struct {
	Base   float64
	Height float64
}

func (t triangle) Area() float64 { return t.Base * t.Height / 2 }

func TestCalculator_isOpenForExtension(t *testing.T) {
	t.Parallel()

	var calc areas.Calculator

	require.Equal(t, float64(6), calc.Area(triangle{Base: 3, Height: 4}))
	require.Equal(t, float64(18), calc.Sum(
		areas.Rectangle{Length: 3, Width: 4},
		triangle{Base: 3, Height: 4},
	))
}

func TestCalculator_Sum(t *testing.T) {
	t.Parallel()

	var calc areas.Calculator

	t.Run(`no shapes, no area`, func(t *testing.T) {
		require.Equal(t, float64(0), calc.Sum())
	})

	t.Run(`mixed shapes are summed through the same role`, func(t *testing.T) {
		expected := 12 + math.Pi
		require.InDelta(t, expected, calc.Sum(
			areas.Rectangle{Length: 3, Width: 4},
			areas.Circle{Radius: 1},
		), 0.0001)
	})
}
