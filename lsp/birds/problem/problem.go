// Package problem holds the bird hierarchy this example refactors away from.
//
// Bird promises flight on behalf of every bird,
// and the Ostrich can only keep that promise by failing at runtime.
// The Migrate helper trusts the Bird contract,
// so a single ostrich in the flock is enough to abort a whole migration.
package problem

import (
	"github.com/goprinciples/solid"
)

// ErrFlightless is what a bird returns when its base abstraction
// made a promise the bird itself cannot keep.
const ErrFlightless solid.Error = `ostriches cannot fly`

// Bird demands flight from every bird, wanted or not.
type Bird interface {
	Fly() error
}

type Duck struct{}

func (Duck) Fly() error { return nil }

type Ostrich struct{}

// Fly exists only because the Bird interface demands it.
func (Ostrich) Fly() error { return ErrFlightless }

// Migrate sends the whole flock flying south.
// It was written against the Bird contract and it is correct against the Bird contract,
// it still fails the moment the flock contains a member that cannot fulfill it.
func Migrate(flock ...Bird) error {
	for _, b := range flock {
		if err := b.Fly(); err != nil {
			return err
		}
	}
	return nil
}
