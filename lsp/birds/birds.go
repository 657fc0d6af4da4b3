// Package birds shows a capability interface replacing a base type that overpromises.
//
// The problem subpackage forces every bird to implement Fly,
// so the Ostrich can only comply by failing at runtime.
// Here being a Bird and being able to fly are two separate contracts.
// Duck implements both, Ostrich only the first,
// and the call site checks the flight capability by type,
// so a flightless bird is skipped instead of blowing up a migration.
package birds

// Bird is what every bird can fulfill: having an identity.
type Bird interface {
	Name() string
}

// Flyer is the flight capability.
// Only birds that can genuinely fly advertise it.
type Flyer interface {
	Fly() string
}

type Duck struct{}

func (Duck) Name() string { return `duck` }
func (Duck) Fly() string  { return `the duck flies off` }

// Ostrich is a Bird and nothing more.
// It has no Fly method, so no caller can even ask it to fly by mistake.
type Ostrich struct{}

func (Ostrich) Name() string { return `ostrich` }

// LiftOff sends every flight capable member of the flock into the air
// and reports what took off.
// The capability check happens here, by type, not by a runtime failure inside a method body.
func LiftOff(flock ...Bird) []string {
	var airborne []string
	for _, b := range flock {
		if flyer, ok := b.(Flyer); ok {
			airborne = append(airborne, flyer.Fly())
		}
	}
	return airborne
}
