package shapes

import (
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"
)

// Contract is the behavior specification every Shape implementation must fulfill.
// Run it against a concrete shape to prove the shape is substitutable
// wherever a Shape is expected.
type Contract struct {
	// Subject returns the Shape implementation under specification.
	Subject func(tb testing.TB) Shape
	// Area is the area the Subject is expected to report.
	Area int
}

func (c Contract) Test(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Let(`shape`, func(t *testcase.T) interface{} {
		return c.Subject(t.T)
	})

	s.Describe(`.Area`, func(s *testcase.Spec) {
		subject := func(t *testcase.T) int {
			return t.I(`shape`).(Shape).Area()
		}

		s.Then(`it reports the expected area`, func(t *testcase.T) {
			require.Equal(t, c.Area, subject(t))
		})

		s.Then(`it reports the same area on repeated calls`, func(t *testcase.T) {
			require.Equal(t, subject(t), subject(t))
		})

		s.Then(`it is consumable through the Shape role by code that never heard about the concrete type`, func(t *testcase.T) {
			require.Equal(t, c.Area, TotalArea(t.I(`shape`).(Shape)))
		})
	})
}
