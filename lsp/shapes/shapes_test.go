package shapes_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goprinciples/solid/fixtures"
	"github.com/goprinciples/solid/lsp/shapes"
)

func ExampleTotalArea() {
	total := shapes.TotalArea(
		shapes.Rectangle{Width: 3, Height: 4},
		shapes.Square{Side: 5},
	)

	fmt.Println(total)
	// Output: 37
}

func TestRectangle(t *testing.T) {
	shapes.Contract{
		Subject: func(tb testing.TB) shapes.Shape {
			return shapes.Rectangle{Width: 3, Height: 4}
		},
		Area: 12,
	}.Test(t)
}

func TestSquare(t *testing.T) {
	shapes.Contract{
		Subject: func(tb testing.TB) shapes.Shape {
			return shapes.Square{Side: 5}
		},
		Area: 25,
	}.Test(t)
}

func TestTotalArea(t *testing.T) {
	t.Parallel()

	t.Run(`when no shape is given`, func(t *testing.T) {
		require.Equal(t, 0, shapes.TotalArea())
	})

	t.Run(`when a mixed set of shapes is given`, func(t *testing.T) {
		width := fixtures.Number(1, 10)
		height := fixtures.Number(1, 10)
		side := fixtures.Number(1, 10)

		total := shapes.TotalArea(
			shapes.Rectangle{Width: width, Height: height},
			shapes.Square{Side: side},
		)

		require.Equal(t, width*height+side*side, total)
	})

	t.Run(`the order of the shapes is irrelevant`, func(t *testing.T) {
		r := shapes.Rectangle{Width: 2, Height: 6}
		sq := shapes.Square{Side: 3}

		require.Equal(t, shapes.TotalArea(r, sq), shapes.TotalArea(sq, r))
	})
}
