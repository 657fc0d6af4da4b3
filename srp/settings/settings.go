// Package settings shows setting edits separated from setting persistence.
//
// The problem subpackage has a UserSettings that both applies changes
// and saves/loads them, two reasons to change in one type.
// Here Settings only knows how to change itself,
// and the Store role owns where and how the result is kept.
package settings

// Settings is the editable part of a user's profile.
type Settings struct {
	Username string
	Email    string
}

// ChangeEmail applies a new email address.
func (s *Settings) ChangeEmail(email string) {
	s.Email = email
}

// ChangeUsername applies a new username.
func (s *Settings) ChangeUsername(username string) {
	s.Username = username
}
