// Package problem holds the report type this example refactors away from.
//
// Report both generates and prints.
// A new content format and a new printing mechanism are two different reasons to change,
// and both of them have to touch this one type.
package problem

import "fmt"

type Report struct{}

// GenerateReport assembles the report.
func (Report) GenerateReport() {
	fmt.Println(`report generated`)
}

// PrintReport prints the report it just generated. Same type, second job.
func (Report) PrintReport() {
	fmt.Println(`report printed`)
}
