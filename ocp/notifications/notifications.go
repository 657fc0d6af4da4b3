// Package notifications shows a notification service that gains channels without being edited.
//
// The problem subpackage switches on a channel name string.
// Here the service broadcasts through whatever Channel implementations it is given,
// and a new channel is a new type.
package notifications

import "fmt"

// Channel is one way of reaching the user.
type Channel interface {
	// Send delivers the message and describes the delivery.
	Send(message string) string
}

// Email reaches the user at an email address.
type Email struct {
	Address string
}

func (c Email) Send(message string) string {
	return fmt.Sprintf(`email to %s: %s`, c.Address, message)
}

// SMS reaches the user at a phone number.
type SMS struct {
	Number string
}

func (c SMS) Send(message string) string {
	return fmt.Sprintf(`sms to %s: %s`, c.Number, message)
}

// Service delivers messages through channels.
// It has no opinion about what a channel is, which is why it never changes.
type Service struct {
	Channels []Channel
}

// Notify sends the message on every configured channel
// and returns the delivery log.
func (s Service) Notify(message string) []string {
	var deliveries []string
	for _, c := range s.Channels {
		deliveries = append(deliveries, c.Send(message))
	}
	return deliveries
}
