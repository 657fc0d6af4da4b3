// Package logging sketches a logger that gains destinations without being edited.
//
// This is a shape study, not a logging library.
// The problem subpackage has a logger switching on a destination string.
// Here the Logger delegates to whatever Strategy it was built with,
// and a new destination is a new Strategy implementation.
package logging

import (
	"fmt"
	"io"
	"os"
)

// Strategy is one way of getting a message out.
type Strategy interface {
	Log(message string) error
}

// ConsoleStrategy writes messages to standard output.
type ConsoleStrategy struct{}

func (ConsoleStrategy) Log(message string) error {
	_, err := fmt.Fprintln(os.Stdout, message)
	return err
}

// WriterStrategy writes messages to any io.Writer,
// which covers files, buffers and sockets without a dedicated strategy for each.
type WriterStrategy struct {
	Out io.Writer
}

func (s WriterStrategy) Log(message string) error {
	_, err := fmt.Fprintln(s.Out, message)
	return err
}

// NewLogger builds a Logger around the given strategy.
func NewLogger(strategy Strategy) *Logger {
	return &Logger{strategy: strategy}
}

// Logger forwards messages to its strategy.
// Destinations come and go, the Logger stays as it is.
type Logger struct {
	strategy Strategy
}

func (l *Logger) Log(message string) error {
	return l.strategy.Log(message)
}
