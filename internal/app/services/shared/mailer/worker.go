package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	mailerdrv "patientdesk-service/internal/app/drivers/mailer"
	"patientdesk-service/internal/pkg/constvars"
	"patientdesk-service/internal/pkg/dto/requests"
	"patientdesk-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker consumes the mailer queue and delivers each message over SMTP.
// Delivery failures are logged and the message is dropped, never requeued:
// a confirmation email is a best-effort side effect and must not pile up
// behind a broken mail transport.
type Worker struct {
	log     *zap.Logger
	channel *amqp091.Channel
	client  *mailerdrv.SMTPClient
	queue   string
	stop    chan struct{}
}

func NewWorker(rabbitMQConnection *amqp091.Connection, client *mailerdrv.SMTPClient, queue string, log *zap.Logger) (*Worker, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &Worker{
		log:     log,
		channel: channel,
		client:  client,
		queue:   queue,
		stop:    make(chan struct{}),
	}, nil
}

// Start begins consuming the queue. It returns a stop function to halt
// execution.
func (w *Worker) Start(ctx context.Context) (stop func(), err error) {
	deliveries, err := w.channel.Consume(w.queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					w.log.Warn("mailer queue channel closed")
					return
				}
				w.handleDelivery(delivery)
			}
		}
	}()

	return func() {
		close(w.stop)
	}, nil
}

func (w *Worker) handleDelivery(delivery amqp091.Delivery) {
	// Ack unconditionally, requeue strategy is DROP.
	defer delivery.Ack(false)

	payload := new(requests.EmailPayload)
	if err := json.Unmarshal(delivery.Body, payload); err != nil {
		w.log.Error("discarding malformed mailer message",
			zap.String("message_id", delivery.MessageId),
			zap.Error(err))
		return
	}

	if err := w.sendEmail(payload); err != nil {
		w.log.Error("confirmation email delivery failed",
			zap.String("message_id", delivery.MessageId),
			zap.String("to", payload.To),
			zap.Error(err))
		return
	}

	w.log.Info("confirmation email delivered",
		zap.String("message_id", delivery.MessageId),
		zap.String("to", payload.To))
}

func (w *Worker) sendEmail(payload *requests.EmailPayload) error {
	from := w.client.EmailSender
	msg := []byte(fmt.Sprintf(constvars.EmailSendBasicEmailSubjectFormat, payload.To, payload.Subject, payload.Body))
	addr := fmt.Sprintf("%s:%d", w.client.Host, w.client.Port)
	err := smtp.SendMail(addr, w.client.Auth, from, []string{payload.To}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, w.client.Host)
	}
	return nil
}
