package problem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goprinciples/solid"
	"github.com/goprinciples/solid/ocp/notifications/problem"
)

func TestSendNotification_knownChannelsWork(t *testing.T) {
	t.Parallel()

	var service problem.Service

	delivery, err := service.SendNotification(`email`, `time for tea`)
	require.NoError(t, err)
	require.Equal(t, `email: time for tea`, delivery)
}

func TestSendNotification_aNewChannelIsARuntimeError(t *testing.T) {
	t.Parallel()

	var service problem.Service

	_, err := service.SendNotification(`push`, `time for tea`)
	require.Equal(t, solid.ErrNotSupported, err)
}
