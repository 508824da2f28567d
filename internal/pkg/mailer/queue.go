package mailer

import (
	"context"

	"limo-booking-service/internal/module/booking/models/entity"
	"limo-booking-service/internal/module/booking/models/request"
	"limo-booking-service/internal/pkg/errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

const (
	TopicSendEmail         = "send_email"
	TopicSendEmailPoisoned = "send_email_poisoned"
	HandlerSendEmail       = "send_email_handler"
)

// Queue hands email to the AMQP send_email topic. Delivery is done by the
// topic consumer, so Send only fails when the broker refuses the message.
type Queue struct {
	publisher message.Publisher
}

func NewQueue(publisher message.Publisher) *Queue {
	return &Queue{publisher: publisher}
}

func (q *Queue) Send(ctx context.Context, email entity.Email) error {
	payload, err := json.Marshal(request.NotificationMessage{
		To:      email.To,
		Subject: email.Subject,
		HTML:    email.HTML,
	})
	if err != nil {
		return errors.InternalServerError("error marshal email message")
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := q.publisher.Publish(TopicSendEmail, msg); err != nil {
		return errors.GatewayError("error publish email message", err)
	}
	return nil
}
