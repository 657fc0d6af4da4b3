package problem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goprinciples/solid/lsp/shapes/problem"
)

// stretch represents innocent caller code that was written with rectangles in mind.
func stretch(r problem.Resizable) int {
	r.SetWidth(3)
	r.SetHeight(4)
	return r.Area()
}

func TestRectangle_behavesAsTheResizableContractPromises(t *testing.T) {
	t.Parallel()

	require.Equal(t, 12, stretch(&problem.Rectangle{}))
}

func TestSquare_breaksTheCallerOfTheResizableContract(t *testing.T) {
	t.Parallel()

	// the caller asked for 3x4 and received 4x4,
	// because the second setter silently rewrote the first dimension.
	require.Equal(t, 16, stretch(&problem.Square{}))
	require.NotEqual(t, 12, stretch(&problem.Square{}))
}

func TestSquare_keepsItsOwnInvariantAtTheCallersExpense(t *testing.T) {
	t.Parallel()

	var sq problem.Square
	sq.SetWidth(3)

	require.Equal(t, 9, sq.Area())

	sq.SetHeight(5)

	require.Equal(t, 25, sq.Area())
}
