// Package problem holds the service this example refactors away from.
//
// SendNotification switches on the channel name.
// Adding a channel edits the service,
// and a channel the switch does not know about is a runtime error.
package problem

import (
	"fmt"

	"github.com/goprinciples/solid"
)

type Service struct{}

func (Service) SendNotification(channel, message string) (string, error) {
	if channel == `email` {
		return fmt.Sprintf(`email: %s`, message), nil
	} else if channel == `sms` {
		return fmt.Sprintf(`sms: %s`, message), nil
	}
	// more conditions for other notification types
	return ``, solid.ErrNotSupported
}
