// Package problem holds the processor this example refactors away from.
//
// The payment type travels as a string and the processor switches on it.
// Every provider integration edits this method,
// and the already shipped providers get re-tested for each new one.
package problem

import (
	"fmt"

	"github.com/goprinciples/solid"
)

type Processor struct{}

// Process moves the money, provided somebody already added a branch for the type.
func (Processor) Process(paymentType string, amount float64) (string, error) {
	if paymentType == `credit` {
		return fmt.Sprintf(`credit payment of %.2f processed`, amount), nil
	} else if paymentType == `paypal` {
		return fmt.Sprintf(`paypal payment of %.2f processed`, amount), nil
	}
	// additional conditions for other payment types
	return ``, solid.ErrNotSupported
}
