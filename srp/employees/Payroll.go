package employees

// Payroll owns the compensation rules.
// When the pay policy changes, this is the only type that hears about it.
type Payroll struct {
	// BaseSalary is the monthly salary before any department adjustment.
	BaseSalary float64
	// DepartmentBonus holds the flat monthly bonus per department.
	DepartmentBonus map[string]float64
}

// CalculatePay returns the monthly pay of the given employee.
func (p Payroll) CalculatePay(e Employee) float64 {
	return p.BaseSalary + p.DepartmentBonus[e.Department]
}
