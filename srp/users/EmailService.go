package users

//go:generate mockgen -destination EmailService_mocks_test.go -source EmailService.go -package users_test

// EmailService is the mailing role of the signup flow.
// What sending means (SMTP, a queue, a log line in a dev environment) is not this package's business.
type EmailService interface {
	SendVerification(u User) error
}
