// Package reports shows report generation separated from report printing.
//
// The problem subpackage has a Report that both assembles and prints itself,
// so a change in the content format and a change in the output device
// land on the same type.
// Here Report only knows how to assemble its content,
// and Printer only knows how to put an assembled report onto an output.
package reports

import (
	"fmt"
	"io"
	"strings"
)

// Report assembles its own content, and nothing else.
type Report struct {
	Title string
	Lines []string
}

// Generate produces the textual content of the report.
func (r Report) Generate() string {
	var b strings.Builder
	b.WriteString(r.Title)
	for _, line := range r.Lines {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

// Printer renders generated reports onto its output.
// Swapping the output device is a Printer concern, the Report never hears about it.
type Printer struct {
	Out io.Writer
}

func (p Printer) Print(r Report) error {
	_, err := fmt.Fprintln(p.Out, r.Generate())
	return err
}
