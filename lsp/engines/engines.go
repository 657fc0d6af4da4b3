// Package engines shows two engine kinds keeping the same start contract by different mechanisms.
//
// The problem subpackage has an ElectricEngine refuse the Start it inherited,
// on the grounds that electric engines start differently.
// Starting differently is fine. Not starting is the violation.
// Here Starter only demands that the engine gets running,
// and each engine kind is free to get there its own way.
package engines

// Starter is the capability of getting an engine running.
type Starter interface {
	// Start brings the engine to a running state and describes how it got there.
	Start() string
}

// CombustionEngine starts with a starter motor and a fuel-air mix.
type CombustionEngine struct{}

func (CombustionEngine) Start() string {
	return `combustion engine cranked by the starter motor`
}

// ElectricEngine starts by energizing the motor controller. No cranking involved.
type ElectricEngine struct{}

func (ElectricEngine) Start() string {
	return `electric engine energized, silently ready`
}

// Ignite starts whatever engine the vehicle was built with.
// The vehicle does not know the mechanism and never has to.
func Ignite(engine Starter) string {
	return engine.Start()
}
