package requests

// CreatePatientRequest is the registration payload. Field order matters:
// the validator walks fields top to bottom and only the first violation is
// reported to the client.
type CreatePatientRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=10"`
	DocumentPhoto string `json:"documentPhoto" validate:"required,url"`
}

// FieldRule describes a single validation rule as data, so the form and the
// server share one contract instead of two hand-maintained validators.
type FieldRule struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// FormValidationRules is the rule set the registration form applies before
// submitting. It intentionally differs from the server-side rules above
// (country+number split, number of at least 7 digits, .jpg uploads); the two
// sets were never reconciled upstream and the server set stays authoritative
// for POST /patients. Served by GET /patients/validation-rules.
var FormValidationRules = []FieldRule{
	{Field: "name", Rule: "letters_only", Message: "Only letters are allowed"},
	{Field: "email", Rule: "email", Message: "Invalid email"},
	{Field: "phoneCountry", Rule: "required", Message: "Country code is required"},
	{Field: "phoneNumber", Rule: "min_digits=7", Message: "Phone number must be at least 7 digits"},
	{Field: "documentPhoto", Rule: "file_jpg", Message: "Only .jpg files are allowed"},
}
