// Package employees shows an employee entity with its payroll, persistence and reporting
// concerns handed to their own collaborators.
//
// The problem subpackage has an Employee that calculates its own pay,
// saves itself and generates its own report.
// Here the entity is data, and each former method body became a type
// with exactly one reason to change:
// Payroll for compensation rules, Repository for storage, ReportGenerator for presentation.
package employees

// Employee is an employee record. Data, nothing else.
type Employee struct {
	ID         string
	Name       string
	Department string
}
