package problem_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goprinciples/solid"
	"github.com/goprinciples/solid/ocp/logging/problem"
)

func TestLog_knownDestinationsWork(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := problem.Logger{FileOut: &out}

	require.NoError(t, logger.Log(`message`, `file`))
	require.Equal(t, "message\n", out.String())
}

func TestLog_anUnwiredDestinationIsARuntimeError(t *testing.T) {
	t.Parallel()

	var logger problem.Logger

	require.Equal(t, solid.ErrNotSupported, logger.Log(`message`, `syslog`))
}
