// Package problem holds the God object this example refactors away from.
//
// Employee keeps its data, calculates its own pay,
// persists itself and reports on itself.
// Four concerns, four reasons to change, one type.
// The payroll policy cannot be unit tested without an Employee
// that also happens to know about databases and report layouts.
package problem

import "fmt"

type Employee struct {
	Name       string
	Department string
}

// CalculatePay computes this employee's monthly pay.
func (e Employee) CalculatePay() float64 {
	return 3000
}

// SaveEmployee persists this employee.
func (e Employee) SaveEmployee() {
	fmt.Println(`employee saved to the database`)
}

// GenerateEmployeeReport reports on this employee.
func (e Employee) GenerateEmployeeReport() {
	fmt.Printf("employee report: %s (%s)\n", e.Name, e.Department)
}
