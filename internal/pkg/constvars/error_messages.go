package constvars

// Client-facing messages. These are part of the HTTP contract consumed by
// the registration form, do not reword them.
const (
	ErrClientRegisterPatient               = "Error registering patient"
	ErrClientFetchPatients                 = "Error fetching patients"
	ErrClientEmailAlreadyRegistered        = "Email already registered"
	ErrClientCannotProcessRequest          = "Cannot process request"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application"
)

// Per-field validation messages keyed by lowercased struct field name.
// Only the first violated field is ever reported.
var PatientValidationMessages = map[string]string{
	"name":          "Name is required",
	"email":         "Invalid email",
	"phone":         "Invalid phone number",
	"documentphoto": "Invalid URL for the document photo",
}

// Developer-facing messages, never sent to clients in production.
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON          = "failed to marshal value to JSON"
	ErrDevEmailAlreadyRegistered     = "patient with the same email already exists"
	ErrDevDBFailedToInsertDocument   = "database failed to insert document"
	ErrDevDBFailedToFindDocument     = "database failed to find document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate documents"
	ErrDevRedisSet                   = "redis failed to set key"
	ErrDevRedisGet                   = "redis failed to get key: %s"
	ErrDevRedisDelete                = "redis failed to delete key"
	ErrDevMailerPublishMessage       = "failed to publish message to mailer queue"
	ErrDevSMTPSendEmail              = "smtp host %s failed to send email"
)
