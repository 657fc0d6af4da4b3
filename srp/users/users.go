// Package users shows a user entity relieved of persistence and mailing duties.
//
// The problem subpackage has a User that saves itself to the database
// and sends its own verification email.
// Here the entity is plain data again,
// saving belongs to a Repository and mailing to an EmailService,
// and the signup use case composes the two without owning either concern.
package users

// User is a user of the system. Data, nothing else.
type User struct {
	ID    string
	Name  string
	Email string
}
