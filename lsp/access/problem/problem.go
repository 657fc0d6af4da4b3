// Package problem holds the user hierarchy this example refactors away from.
//
// User answers the access question, GuestUser overrides the answer with a failure.
// Code that was correct for every User suddenly has an error path
// that exists purely because a subtype refused the inherited contract.
package problem

import (
	"github.com/goprinciples/solid"
)

const ErrGuestAccess solid.Error = `guest users don't have access`

// User is a signed in user of the system.
type User struct {
	Name string
}

// CheckAccess reports whether the user may enter the protected area.
func (User) CheckAccess() (bool, error) {
	return true, nil
}

// GuestUser extends User, and with that it inherits a question it refuses to answer.
type GuestUser struct {
	User
}

// CheckAccess fails instead of answering,
// making GuestUser unusable wherever a User is expected.
func (GuestUser) CheckAccess() (bool, error) {
	return false, ErrGuestAccess
}

// AccessChecker is the surface the gate below programs against.
type AccessChecker interface {
	CheckAccess() (bool, error)
}

// Admit decides about a visitor the way it would about any User.
func Admit(visitor AccessChecker) (bool, error) {
	return visitor.CheckAccess()
}
