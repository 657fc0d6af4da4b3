// Package problem holds the settings manager this example refactors away from.
//
// UserSettings edits the settings and persists them.
// A change in what can be edited and a change in where settings live
// both have to modify this one type.
package problem

import "fmt"

type User struct {
	Username string
	Email    string
}

type UserSettings struct{}

func (UserSettings) ChangeEmail(u *User, email string) {
	u.Email = email
}

func (UserSettings) ChangeUsername(u *User, username string) {
	u.Username = username
}

// SaveSettings persists the user's settings. Different concern, same type.
func (UserSettings) SaveSettings(u *User) {
	fmt.Println(`settings saved`)
}

// LoadSettings restores the user's settings.
func (UserSettings) LoadSettings(u *User) {
	fmt.Println(`settings loaded`)
}
