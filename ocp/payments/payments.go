// Package payments shows a payment processor extended with methods, not branches.
//
// The problem subpackage switches on a payment type string.
// Here the processor works through the Method interface,
// and a new provider integration is a new Method implementation in its own file.
package payments

import "fmt"

// Method is one way of moving the money.
type Method interface {
	// Pay moves the given amount and describes the movement.
	Pay(amount float64) string
}

// Credit pays by charging a credit card.
type Credit struct{}

func (Credit) Pay(amount float64) string {
	return fmt.Sprintf(`credit payment of %.2f processed`, amount)
}

// PayPal pays through a PayPal account.
type PayPal struct{}

func (PayPal) Pay(amount float64) string {
	return fmt.Sprintf(`paypal payment of %.2f processed`, amount)
}

// Processor runs payments through any method it is handed.
// New methods never change it.
type Processor struct{}

func (Processor) Process(m Method, amount float64) string {
	return m.Pay(amount)
}
