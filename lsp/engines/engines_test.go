package engines_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goprinciples/solid/lsp/engines"
)

func ExampleIgnite() {
	fmt.Println(engines.Ignite(engines.ElectricEngine{}))
	// Output: electric engine energized, silently ready
}

func TestIgnite(t *testing.T) {
	t.Parallel()

	t.Run(`a combustion engine starts by cranking`, func(t *testing.T) {
		require.Contains(t, engines.Ignite(engines.CombustionEngine{}), `cranked`)
	})

	t.Run(`an electric engine starts by energizing`, func(t *testing.T) {
		require.Contains(t, engines.Ignite(engines.ElectricEngine{}), `energized`)
	})

	t.Run(`both engine kinds fulfill the same contract`, func(t *testing.T) {
		for _, engine := range []engines.Starter{
			engines.CombustionEngine{},
			engines.ElectricEngine{},
		} {
			require.NotEmpty(t, engines.Ignite(engine))
		}
	})
}
