package utils

import (
	"patientdesk-service/internal/pkg/dto/requests"
	"strings"
)

// SanitizeCreatePatientRequest normalizes the payload before validation.
// Emails are stored lowercase so the optional uniqueness check is not
// case-sensitive.
func SanitizeCreatePatientRequest(request *requests.CreatePatientRequest) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
	request.DocumentPhoto = strings.TrimSpace(request.DocumentPhoto)
}
