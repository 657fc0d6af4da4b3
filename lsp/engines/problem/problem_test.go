package problem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goprinciples/solid/lsp/engines/problem"
)

func TestIgnite_combustionEngineStarts(t *testing.T) {
	t.Parallel()

	require.NoError(t, problem.Ignite(problem.CombustionEngine{}))
}

func TestIgnite_electricEngineRefusesTheInheritedContract(t *testing.T) {
	t.Parallel()

	err := problem.Ignite(problem.ElectricEngine{})

	require.Error(t, err)
	require.Equal(t, problem.ErrElectricStart, err)
}
