// Package discounts shows a discount calculator extended by strategy, not by branch.
//
// The problem subpackage switches on a discount type string,
// so a new campaign means editing the calculator.
// Here the calculator applies whatever Strategy it is handed,
// and a new campaign is a new Strategy implementation.
package discounts

// Strategy decides how a discount reduces an amount.
type Strategy interface {
	// Apply returns the amount after the discount.
	Apply(amount float64) float64
}

// Fixed takes a flat sum off the amount.
type Fixed struct {
	Sum float64
}

func (d Fixed) Apply(amount float64) float64 {
	discounted := amount - d.Sum
	if discounted < 0 {
		return 0
	}
	return discounted
}

// Percentage takes a rate off the amount, 0.1 meaning ten percent.
type Percentage struct {
	Rate float64
}

func (d Percentage) Apply(amount float64) float64 {
	return amount - amount*d.Rate
}

// Calculator applies any strategy to any amount.
// New strategies never change it.
type Calculator struct{}

func (Calculator) Calculate(s Strategy, amount float64) float64 {
	return s.Apply(amount)
}
