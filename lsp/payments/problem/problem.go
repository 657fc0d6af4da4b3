// Package problem holds the payment hierarchy this example refactors away from.
//
// Payment promises that Process can be called on any payment.
// FreeTrialPayment overrides Process with a refusal,
// so the one payment kind that is the easiest to settle
// is the one that aborts the checkout.
package problem

import (
	"github.com/goprinciples/solid"
)

const ErrFreeTrial solid.Error = `free trials don't process payments`

// Payment is the base contract of the checkout.
type Payment interface {
	Process() error
}

type CreditCardPayment struct {
	Amount float64
}

func (CreditCardPayment) Process() error { return nil }

type FreeTrialPayment struct {
	Days int
}

// Process refuses, because a free trial has no money to move.
// The refusal lives inside the method body, where no caller can see it coming.
func (FreeTrialPayment) Process() error { return ErrFreeTrial }

// Checkout settles a purchase, or at least it tries to.
func Checkout(ps ...Payment) error {
	for _, p := range ps {
		if err := p.Process(); err != nil {
			return err
		}
	}
	return nil
}
