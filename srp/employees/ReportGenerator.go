package employees

import "fmt"

// ReportGenerator presents employees.
// A new report layout changes this type and only this type.
type ReportGenerator struct{}

// Generate returns the report line of the given employee.
func (ReportGenerator) Generate(e Employee) string {
	return fmt.Sprintf(`employee report: %s (%s)`, e.Name, e.Department)
}
