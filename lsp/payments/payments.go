// Package payments shows every payment kind fulfilling the processing contract on its own terms.
//
// The problem subpackage has a FreeTrialPayment reject Process outright,
// because a free trial involves no money.
// But the Payment contract never promised money movement,
// it promised that processing a payment settles it.
// A credit card settles by charging, a free trial settles by recording the activation.
// Both can keep that promise, so both stay substitutable.
package payments

import (
	"fmt"
)

// Payment is anything the checkout can settle.
type Payment interface {
	// Process settles the payment and describes what settling meant for this payment kind.
	Process() string
}

// CreditCardPayment settles by charging the card.
type CreditCardPayment struct {
	Amount float64
}

func (p CreditCardPayment) Process() string {
	return fmt.Sprintf(`charged %.2f to the credit card`, p.Amount)
}

// FreeTrialPayment settles by activating the trial.
// Nothing is charged, and nothing needs to be refused either.
type FreeTrialPayment struct {
	Days int
}

func (p FreeTrialPayment) Process() string {
	return fmt.Sprintf(`free trial activated for %d days, nothing charged`, p.Days)
}

// Checkout settles every payment of a purchase and returns the settlement log.
// It neither knows nor cares which payment kinds it received.
func Checkout(ps ...Payment) []string {
	var log []string
	for _, p := range ps {
		log = append(log, p.Process())
	}
	return log
}
