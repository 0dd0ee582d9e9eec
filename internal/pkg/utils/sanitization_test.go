package utils

import (
	"patientdesk-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreatePatientRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.CreatePatientRequest{
			Name:          "John Doe",
			Email:         "  JOHN@EXAMPLE.COM  ",
			Phone:         "1234567890",
			DocumentPhoto: "http://example.com/photo.jpg",
		}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, "john@example.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Whitespace Trimming", func(t *testing.T) {
		request := &requests.CreatePatientRequest{
			Name:          "  John Doe  ",
			Email:         "john@example.com",
			Phone:         " 1234567890 ",
			DocumentPhoto: " http://example.com/photo.jpg ",
		}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, "John Doe", request.Name, "name should be trimmed")
		assert.Equal(t, "1234567890", request.Phone, "phone should be trimmed")
		assert.Equal(t, "http://example.com/photo.jpg", request.DocumentPhoto, "document photo should be trimmed")
	})

	t.Run("Whitespace-Only Name Becomes Empty", func(t *testing.T) {
		request := &requests.CreatePatientRequest{
			Name:          "   ",
			Email:         "john@example.com",
			Phone:         "1234567890",
			DocumentPhoto: "http://example.com/photo.jpg",
		}

		SanitizeCreatePatientRequest(request)

		assert.Empty(t, request.Name, "whitespace-only name should be empty after sanitization")
	})
}
