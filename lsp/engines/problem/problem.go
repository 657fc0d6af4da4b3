// Package problem holds the engine hierarchy this example refactors away from.
//
// Engine promises that Start works on every engine.
// ElectricEngine overrides Start with a refusal because its mechanism differs,
// and with that a car built around the Engine contract
// stalls exactly when it receives the most modern engine.
package problem

import (
	"github.com/goprinciples/solid"
)

const ErrElectricStart solid.Error = `electric engines start differently`

type Engine interface {
	Start() error
}

type CombustionEngine struct{}

func (CombustionEngine) Start() error { return nil }

type ElectricEngine struct{}

// Start refuses instead of starting its own way.
func (ElectricEngine) Start() error { return ErrElectricStart }

// Ignite turns the key on whatever engine the car was built with.
func Ignite(engine Engine) error {
	return engine.Start()
}
