// Package problem holds the logger this example refactors away from.
//
// Log takes the destination as a string and switches on it.
// Every new destination reopens this method,
// and a destination nobody wired up yet is a runtime error.
package problem

import (
	"fmt"
	"io"

	"github.com/goprinciples/solid"
)

// Logger knows every destination by name.
type Logger struct {
	// FileOut stands in for the opened log file of the "file" destination.
	FileOut io.Writer
}

func (l Logger) Log(message, logType string) error {
	if logType == `console` {
		fmt.Println(message)
		return nil
	} else if logType == `file` {
		_, err := fmt.Fprintln(l.FileOut, message)
		return err
	}
	// more conditions for more destinations, forever
	return solid.ErrNotSupported
}
