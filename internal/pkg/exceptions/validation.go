package exceptions

import (
	"patientdesk-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError reports only the first violated rule. Rule
// checks run in struct field order, so the reported field is deterministic:
// name, then email, then phone, then documentPhoto.
func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	firstErr := validationErrors[0]
	fieldName := strings.ToLower(firstErr.Field())
	if message, ok := constvars.PatientValidationMessages[fieldName]; ok {
		return message
	}
	return fieldName + " is invalid"
}
