package constvars

const (
	EmailRegistrationSubject    = "Registration Confirmation"
	EmailRegistrationBodyFormat = "Hi %s, your registration was successful!"
)

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
)
