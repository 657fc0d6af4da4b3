package users

// Signup is the registration use case.
// It owns the order of the steps, while the steps themselves
// live behind the Repository and EmailService roles.
type Signup struct {
	Users  Repository
	Emails EmailService
}

// Register persists the new user and kicks off the address verification.
func (s Signup) Register(u *User) error {
	if err := s.Users.Save(u); err != nil {
		return err
	}
	return s.Emails.SendVerification(*u)
}
