package mailer

import (
	"context"
	"patientdesk-service/internal/pkg/dto/requests"
)

// MailerService dispatches a confirmation email. Dispatch means handing the
// message to the mailer queue; actual SMTP delivery happens in the Worker
// and is never reported back to the caller.
type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}
