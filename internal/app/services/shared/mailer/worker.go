package mailer

import (
	"context"
	"fmt"
	smtpdriver "mediconnect-service/internal/app/drivers/mailer"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"net/smtp"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker drains the mail queue and talks SMTP. Keeping the send on the
// consumer side means a flaky mail server never rolls back the state
// that triggered the email.
type Worker struct {
	Channel *amqp091.Channel
	Client  *smtpdriver.SMTPClient
	Queue   string
	Log     *zap.Logger
}

func NewWorker(rabbitMQConnection *amqp091.Connection, client *smtpdriver.SMTPClient, queue string, logger *zap.Logger) (*Worker, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	if err := channel.Qos(1, 0, false); err != nil {
		return nil, err
	}

	return &Worker{
		Channel: channel,
		Client:  client,
		Queue:   queue,
		Log:     logger,
	}, nil
}

// Start consumes until the returned stop function is called.
func (w *Worker) Start(ctx context.Context) (func(), error) {
	deliveries, err := w.Channel.Consume(w.Queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	workerCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case <-workerCtx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handleDelivery(delivery)
			}
		}
	}()

	stop := func() {
		cancel()
		w.Channel.Close()
		wg.Wait()
	}
	return stop, nil
}

func (w *Worker) handleDelivery(delivery amqp091.Delivery) {
	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		w.Log.Error("mailerWorker.handleDelivery cannot unmarshal payload",
			zap.Error(err),
		)
		// Poison message, drop it.
		delivery.Nack(false, false)
		return
	}

	if err := w.sendHTMLEmail(&payload); err != nil {
		w.Log.Error("mailerWorker.handleDelivery failed sending email",
			zap.String("subject", payload.Subject),
			zap.Error(err),
		)
		delivery.Nack(false, true)
		return
	}

	w.Log.Info("mailerWorker.handleDelivery email sent",
		zap.String("subject", payload.Subject),
	)
	delivery.Ack(false)
}

func (w *Worker) sendHTMLEmail(payload *requests.EmailPayload) error {
	from := payload.From
	if from == "" {
		from = w.Client.EmailSender
	}
	for _, recipient := range payload.To {
		msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLSubjectFormat, recipient, payload.Subject, payload.HTMLBody))
		addr := fmt.Sprintf("%s:%d", w.Client.Host, w.Client.Port)
		if err := smtp.SendMail(addr, w.Client.Auth, from, []string{recipient}, msg); err != nil {
			return err
		}
	}
	return nil
}
