// Package problem holds the calculator this example refactors away from.
//
// The discount type travels as a string and the calculator switches on it.
// A new campaign edits the switch,
// a typo in the string silently yields the full price.
package problem

// Calculator knows every discount type by name.
type Calculator struct{}

// Calculate returns the discounted amount.
// An unrecognized type falls through to the undiscounted amount, silently.
func (Calculator) Calculate(discountType string, amount float64) float64 {
	if discountType == `FIXED` {
		return amount - 50
	} else if discountType == `PERCENTAGE` {
		return amount - amount*0.1
	}
	return amount
}
