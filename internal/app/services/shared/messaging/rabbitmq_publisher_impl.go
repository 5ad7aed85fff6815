package messaging

import (
	"context"
	"healthinfo-service/internal/pkg/constvars"
	"healthinfo-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type event struct {
	Name       string      `json:"name"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

type rabbitMQPublisher struct {
	channel   *amqp091.Channel
	queueName string
}

func NewRabbitMQPublisher(conn *amqp091.Connection, queueName string) (EventPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{
		channel:   channel,
		queueName: queueName,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, eventName string, payload interface{}) error {
	body, err := json.Marshal(event{
		Name:       eventName,
		OccurredAt: time.Now(),
		Payload:    payload,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		"",
		p.queueName,
		false,
		false,
		amqp091.Publishing{
			ContentType: constvars.MIMEApplicationJSON,
			Body:        body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	return nil
}
