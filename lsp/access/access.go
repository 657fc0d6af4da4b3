// Package access shows an access check that answers instead of failing.
//
// The problem subpackage has a GuestUser override CheckAccess with a runtime failure,
// so guest users cannot stand in for users in any code path that asks the question.
// Here User is an interface whose CanAccess answers honestly for every kind of user,
// a guest simply answers no.
package access

// User is any authenticated or anonymous visitor that can answer an access question.
type User interface {
	// CanAccess reports whether the user may enter the protected area.
	// Every implementation answers, none of them fails.
	CanAccess() bool
}

// RegularUser is a signed up member.
type RegularUser struct {
	Name string
}

func (RegularUser) CanAccess() bool { return true }

// GuestUser is an anonymous visitor.
// It has different access rights than a regular user, not a different contract.
type GuestUser struct{}

func (GuestUser) CanAccess() bool { return false }

// Admitted filters the given users down to the ones allowed through the gate.
// It treats every User alike, which is the whole point.
func Admitted(users ...User) []User {
	var allowed []User
	for _, u := range users {
		if u.CanAccess() {
			allowed = append(allowed, u)
		}
	}
	return allowed
}
