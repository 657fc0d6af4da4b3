// Package problem holds the God object this example refactors away from.
//
// User manages its own fields, saves itself to the database
// and sends its own verification email.
// That is three reasons to change in one type:
// a schema migration, a new mail provider and a renamed field all land here.
// And none of it can be tested without dragging the other concerns along.
package problem

import "fmt"

// User is a user of the system, and its own repository, and its own mailer.
type User struct {
	Name  string
	Email string
}

// Save writes the user to the database.
func (u User) Save() {
	fmt.Println(`user saved to the database`)
}

// SendEmailVerification delivers the verification mail for this very user.
func (u User) SendEmailVerification() {
	fmt.Println(`email verification sent`)
}
